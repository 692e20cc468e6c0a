package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/usage"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// UsageQuotaMiddleware meters quota-consuming endpoints per authenticated user.
type UsageQuotaMiddleware struct {
	reserveUseCase *usage.ReserveUsageUseCase
}

// NewUsageQuotaMiddleware creates a new usage quota middleware instance.
func NewUsageQuotaMiddleware(reserveUseCase *usage.ReserveUsageUseCase) *UsageQuotaMiddleware {
	return &UsageQuotaMiddleware{
		reserveUseCase: reserveUseCase,
	}
}

// Enforce rejects the request once either limit is used up. A failed lookup
// also rejects it. Only successful handlers keep the unit they reserved.
// It must run after Authenticate.
func (m *UsageQuotaMiddleware) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			abortUnauthorized(c, "User not authenticated", domainerror.ErrCodeMissingToken)
			return
		}

		input := usage.ReserveUsageInput{UserID: userID}

		// Reserve first so parallel requests cannot all pass the same check
		output, err := m.reserveUseCase.Execute(c.Request.Context(), input)
		if err != nil {
			slog.Error("Failed to check usage quota", "error", err, "userID", userID)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Unable to check usage limits. Please try again later.",
				Code:  string(domainerror.ErrCodeQuotaUnavailable),
			})
			return
		}

		if !output.Allowed {
			details := "Monthly limit reached"
			if output.Info.DailyRemaining == 0 {
				details = "Daily limit reached"
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "Usage limit exceeded",
				Code:    string(domainerror.ErrCodeQuotaExceeded),
				Details: details,
			})
			return
		}

		c.Next()

		if status := c.Writer.Status(); status >= http.StatusOK && status < http.StatusMultipleChoices {
			return
		}
		// Failed requests hand their unit back
		if err := m.reserveUseCase.Release(c.Request.Context(), input); err != nil {
			slog.Error("Failed to release usage", "error", err, "userID", userID)
		}
	}
}
