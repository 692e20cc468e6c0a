package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/consent"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// ConsentController handles consent endpoints.
type ConsentController struct {
	grantUseCase  *consent.GrantConsentsUseCase
	getUseCase    *consent.GetConsentsUseCase
	updateUseCase *consent.UpdateConsentUseCase
}

// NewConsentController creates a new consent controller instance.
func NewConsentController(
	grantUseCase *consent.GrantConsentsUseCase,
	getUseCase *consent.GetConsentsUseCase,
	updateUseCase *consent.UpdateConsentUseCase,
) *ConsentController {
	return &ConsentController{
		grantUseCase:  grantUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Grant handles POST /consents requests.
func (c *ConsentController) Grant(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.GrantConsentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingConsentFields))
		return
	}

	output, err := c.grantUseCase.Execute(ctx.Request.Context(), consent.GrantConsentsInput{
		UserID:         userID,
		DataProcessing: req.DataProcessing,
		Marketing:      req.Marketing,
		Location:       req.Location,
		Analytics:      req.Analytics,
		IPAddress:      ctx.ClientIP(),
	})
	if err != nil {
		c.handleConsentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ConsentListResponse{
		Consents:   dto.ToConsentResponses(output.Consents),
		HasConsent: true,
	})
}

// List handles GET /consents requests.
func (c *ConsentController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), consent.GetConsentsInput{UserID: userID})
	if err != nil {
		c.handleConsentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ConsentListResponse{
		Consents:   dto.ToConsentResponses(output.Consents),
		HasConsent: output.HasConsent,
	})
}

// Status handles GET /consents/status requests.
func (c *ConsentController) Status(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), consent.GetConsentsInput{UserID: userID})
	if err != nil {
		c.handleConsentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ConsentStatusResponse{HasConsent: output.HasConsent})
}

// Update handles PUT /consents/:type requests.
func (c *ConsentController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateConsentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingConsentFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), consent.UpdateConsentInput{
		UserID:      userID,
		ConsentType: ctx.Param("type"),
		Granted:     *req.Granted,
		IPAddress:   ctx.ClientIP(),
	})
	if err != nil {
		c.handleConsentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsentResponse(output.Consent))
}

// handleConsentError handles consent errors and returns appropriate HTTP responses.
func (c *ConsentController) handleConsentError(ctx *gin.Context, err error) {
	var consentErr *domainerror.ConsentError
	if errors.As(err, &consentErr) {
		ctx.JSON(c.getStatusCodeForConsentError(consentErr.Code), dto.ErrorResponse{
			Error: consentErr.Message,
			Code:  string(consentErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForConsentError maps consent error codes to HTTP status codes.
func (c *ConsentController) getStatusCodeForConsentError(code domainerror.ConsentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidConsentType,
		domainerror.ErrCodeRequiredConsentMissing,
		domainerror.ErrCodeRequiredConsentRevoke,
		domainerror.ErrCodeMissingConsentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
