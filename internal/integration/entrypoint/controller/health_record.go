package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/healthrecord"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// HealthRecordController handles a pet's medical history endpoints.
type HealthRecordController struct {
	listUseCase   *healthrecord.ListHealthRecordsUseCase
	createUseCase *healthrecord.CreateHealthRecordUseCase
	deleteUseCase *healthrecord.DeleteHealthRecordUseCase
}

// NewHealthRecordController creates a new health record controller instance.
func NewHealthRecordController(
	listUseCase *healthrecord.ListHealthRecordsUseCase,
	createUseCase *healthrecord.CreateHealthRecordUseCase,
	deleteUseCase *healthrecord.DeleteHealthRecordUseCase,
) *HealthRecordController {
	return &HealthRecordController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /pets/:id/health-records requests.
func (c *HealthRecordController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	petID, ok := parseIDParam(ctx, "id", "pet")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), healthrecord.ListHealthRecordsInput{
		PetID:   petID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleHealthRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthRecordListResponse(output.Records))
}

// Create handles POST /pets/:id/health-records requests.
func (c *HealthRecordController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	petID, ok := parseIDParam(ctx, "id", "pet")
	if !ok {
		return
	}

	var req dto.CreateHealthRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingRecordFields))
		return
	}

	input := healthrecord.CreateHealthRecordInput{
		PetID:        petID,
		OwnerID:      userID,
		RecordType:   req.RecordType,
		Title:        req.Title,
		Description:  req.Description,
		RecordDate:   req.RecordDate,
		Veterinarian: req.Veterinarian,
		IPAddress:    ctx.ClientIP(),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHealthRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHealthRecordResponse(output.Record))
}

// Delete handles DELETE /health-records/:id requests.
func (c *HealthRecordController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	recordID, ok := parseIDParam(ctx, "id", "health record")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), healthrecord.DeleteHealthRecordInput{
		RecordID:  recordID,
		OwnerID:   userID,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		c.handleHealthRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleHealthRecordError handles health record errors and returns appropriate HTTP responses.
func (c *HealthRecordController) handleHealthRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.HealthRecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(c.getStatusCodeForHealthRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForHealthRecordError maps health record error codes to HTTP status codes.
func (c *HealthRecordController) getStatusCodeForHealthRecordError(code domainerror.HealthRecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeHealthRecordNotFound,
		domainerror.ErrCodeRecordPetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecordType,
		domainerror.ErrCodeInvalidRecordTitle,
		domainerror.ErrCodeInvalidRecordDate,
		domainerror.ErrCodeMissingRecordFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
