package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/upload"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

const uploadFormField = "file"

// UploadController handles image uploads.
type UploadController struct {
	uploadUseCase *upload.UploadImageUseCase
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(uploadUseCase *upload.UploadImageUseCase) *UploadController {
	return &UploadController{
		uploadUseCase: uploadUseCase,
	}
}

// Upload handles POST /uploads/:bucket requests.
func (c *UploadController) Upload(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		return
	}

	header, err := ctx.FormFile(uploadFormField)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "file is required",
			Code:  string(domainerror.ErrCodeMissingFile),
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the size check to fire.
	data, err := io.ReadAll(io.LimitReader(file, c.uploadUseCase.MaxSizeBytes()+1))
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), upload.UploadImageInput{
		Bucket: ctx.Param("bucket"),
		Data:   data,
	})
	if err != nil {
		c.handleUploadError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUploadResponse(output.Image))
}

// handleUploadError handles upload errors and returns appropriate HTTP responses.
func (c *UploadController) handleUploadError(ctx *gin.Context, err error) {
	var uploadErr *domainerror.UploadError
	if errors.As(err, &uploadErr) {
		status := c.getStatusCodeForUploadError(uploadErr.Code)
		if status == http.StatusInternalServerError {
			respondInternalError(ctx, err)
			return
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: uploadErr.Message,
			Code:  string(uploadErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForUploadError maps upload error codes to HTTP status codes.
func (c *UploadController) getStatusCodeForUploadError(code domainerror.UploadErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBucket,
		domainerror.ErrCodeUnsupportedImageType,
		domainerror.ErrCodeImageTooLarge,
		domainerror.ErrCodeMissingFile,
		domainerror.ErrCodeImageDecodeFailed,
		domainerror.ErrCodeImageDimensions:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
