package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/profile"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile and privacy endpoints.
type ProfileController struct {
	getUseCase     *profile.GetProfileUseCase
	updateUseCase  *profile.UpdateProfileUseCase
	privacyUseCase *profile.UpdatePrivacyUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
	privacyUseCase *profile.UpdatePrivacyUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		privacyUseCase: privacyUseCase,
	}
}

// GetOwn handles GET /profile requests.
func (c *ProfileController) GetOwn(ctx *gin.Context) {
	c.get(ctx, "")
}

// GetByUsername handles GET /profiles/:username requests.
func (c *ProfileController) GetByUsername(ctx *gin.Context) {
	c.get(ctx, ctx.Param("username"))
}

func (c *ProfileController) get(ctx *gin.Context, username string) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{
		ViewerID: userID,
		Username: username,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	if output.Limited {
		ctx.JSON(http.StatusOK, dto.ToLimitedProfileResponse(output.Profile))
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Update handles PATCH /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingProfileFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:      userID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Location:    req.Location,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// UpdatePrivacy handles PUT /profile/privacy requests.
func (c *ProfileController) UpdatePrivacy(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.PrivacySettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingProfileFields))
		return
	}

	output, err := c.privacyUseCase.Execute(ctx.Request.Context(), profile.UpdatePrivacyInput{
		UserID: userID,
		Settings: entity.PrivacySettings{
			ProfileVisibility: entity.ProfileVisibility(req.ProfileVisibility),
			LocationSharing:   req.LocationSharing,
			ShowPets:          req.ShowPets,
		},
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPrivacySettingsResponse(output.Settings))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(c.getStatusCodeForProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *ProfileController) getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDisplayName,
		domainerror.ErrCodeInvalidBio,
		domainerror.ErrCodeInvalidLocation,
		domainerror.ErrCodeInvalidProfileVisibility,
		domainerror.ErrCodeMissingProfileFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
