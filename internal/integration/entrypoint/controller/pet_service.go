package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/application/usecase/petservice"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

// ServiceController handles the pet services directory and its reviews.
type ServiceController struct {
	listUseCase         *petservice.ListServicesUseCase
	getUseCase          *petservice.GetServiceUseCase
	listReviewsUseCase  *petservice.ListReviewsUseCase
	createReviewUseCase *petservice.CreateReviewUseCase
}

// NewServiceController creates a new service controller instance.
func NewServiceController(
	listUseCase *petservice.ListServicesUseCase,
	getUseCase *petservice.GetServiceUseCase,
	listReviewsUseCase *petservice.ListReviewsUseCase,
	createReviewUseCase *petservice.CreateReviewUseCase,
) *ServiceController {
	return &ServiceController{
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		listReviewsUseCase:  listReviewsUseCase,
		createReviewUseCase: createReviewUseCase,
	}
}

// List handles GET /services requests.
func (c *ServiceController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), petservice.ListServicesInput{
		Type:   ctx.Query("type"),
		Search: ctx.Query("q"),
	})
	if err != nil {
		c.handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(output.Services))
}

// Get handles GET /services/:id requests.
func (c *ServiceController) Get(ctx *gin.Context) {
	serviceID, ok := parseIDParam(ctx, "id", "service")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), petservice.GetServiceInput{ServiceID: serviceID})
	if err != nil {
		c.handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(output.Service))
}

// ListReviews handles GET /services/:id/reviews requests.
func (c *ServiceController) ListReviews(ctx *gin.Context) {
	serviceID, ok := parseIDParam(ctx, "id", "service")
	if !ok {
		return
	}

	output, err := c.listReviewsUseCase.Execute(ctx.Request.Context(), petservice.ListReviewsInput{ServiceID: serviceID})
	if err != nil {
		c.handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReviewListResponse(output.Reviews))
}

// CreateReview handles POST /services/:id/reviews requests.
func (c *ServiceController) CreateReview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(ctx, "id", "service")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingReviewFields))
		return
	}

	output, err := c.createReviewUseCase.Execute(ctx.Request.Context(), petservice.CreateReviewInput{
		ServiceID: serviceID,
		UserID:    userID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		c.handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateReviewResponse{
		Review:  dto.ToReviewResponse(output.Review),
		Service: dto.ToServiceResponse(output.Service),
	})
}

// handleServiceError handles directory errors and returns appropriate HTTP responses.
func (c *ServiceController) handleServiceError(ctx *gin.Context, err error) {
	var serviceErr *domainerror.ServiceError
	if errors.As(err, &serviceErr) {
		ctx.JSON(c.getStatusCodeForServiceError(serviceErr.Code), dto.ErrorResponse{
			Error: serviceErr.Message,
			Code:  string(serviceErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForServiceError maps directory error codes to HTTP status codes.
func (c *ServiceController) getStatusCodeForServiceError(code domainerror.ServiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeServiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyReviewed:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidServiceType,
		domainerror.ErrCodeInvalidRating,
		domainerror.ErrCodeReviewTooLong,
		domainerror.ErrCodeMissingReviewFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
