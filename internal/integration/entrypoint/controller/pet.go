package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/pet"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// PetController handles pet endpoints.
type PetController struct {
	listUseCase   *pet.ListPetsUseCase
	createUseCase *pet.CreatePetUseCase
	updateUseCase *pet.UpdatePetUseCase
	deleteUseCase *pet.DeletePetUseCase
}

// NewPetController creates a new pet controller instance.
func NewPetController(
	listUseCase *pet.ListPetsUseCase,
	createUseCase *pet.CreatePetUseCase,
	updateUseCase *pet.UpdatePetUseCase,
	deleteUseCase *pet.DeletePetUseCase,
) *PetController {
	return &PetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /pets requests.
func (c *PetController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), pet.ListPetsInput{OwnerID: userID})
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPetListResponse(output.Pets))
}

// Create handles POST /pets requests.
func (c *PetController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingPetFields))
		return
	}

	input := pet.CreatePetInput{
		OwnerID:     userID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   req.BirthDate,
		MicrochipID: req.MicrochipID,
		PhotoURL:    req.PhotoURL,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPetResponse(output.Pet))
}

// Update handles PATCH /pets/:id requests.
func (c *PetController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	petID, ok := parseIDParam(ctx, "id", "pet")
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingPetFields))
		return
	}

	input := pet.UpdatePetInput{
		PetID:       petID,
		OwnerID:     userID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   req.BirthDate,
		MicrochipID: req.MicrochipID,
		PhotoURL:    req.PhotoURL,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPetResponse(output.Pet))
}

// Delete handles DELETE /pets/:id requests.
func (c *PetController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	petID, ok := parseIDParam(ctx, "id", "pet")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), pet.DeletePetInput{
		PetID:   petID,
		OwnerID: userID,
	})
	if err != nil {
		c.handlePetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePetError handles pet errors and returns appropriate HTTP responses.
func (c *PetController) handlePetError(ctx *gin.Context, err error) {
	var petErr *domainerror.PetError
	if errors.As(err, &petErr) {
		ctx.JSON(c.getStatusCodeForPetError(petErr.Code), dto.ErrorResponse{
			Error: petErr.Message,
			Code:  string(petErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForPetError maps pet error codes to HTTP status codes.
func (c *PetController) getStatusCodeForPetError(code domainerror.PetErrorCode) int {
	switch code {
	case domainerror.ErrCodePetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPetName,
		domainerror.ErrCodeInvalidSpecies,
		domainerror.ErrCodeInvalidBirthDate,
		domainerror.ErrCodeMissingPetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
