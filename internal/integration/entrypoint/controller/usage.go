package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/usage"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// UsageController reports quota consumption.
type UsageController struct {
	checkUseCase *usage.CheckQuotaUseCase
}

// NewUsageController creates a new usage controller instance.
func NewUsageController(checkUseCase *usage.CheckQuotaUseCase) *UsageController {
	return &UsageController{
		checkUseCase: checkUseCase,
	}
}

// Get handles GET /usage requests.
func (c *UsageController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), usage.CheckQuotaInput{UserID: userID})
	if err != nil {
		var usageErr *domainerror.UsageError
		if errors.As(err, &usageErr) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: usageErr.Message,
				Code:  string(usageErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsageResponse(output.Info))
}
