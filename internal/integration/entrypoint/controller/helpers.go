package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/middleware"
)

// currentUserID returns the authenticated user or writes a 401.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondInvalidBody(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  code,
	})
}

func respondInternalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"error", err,
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
