package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/auth"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// UserController handles account management endpoints.
type UserController struct {
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(deleteAccountUseCase *auth.DeleteAccountUseCase) *UserController {
	return &UserController{
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
		IPAddress:    ctx.ClientIP(),
	}

	if _, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
