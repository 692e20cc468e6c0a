// Package petservice contains use cases for the pet services directory and its reviews.
package petservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// ListServicesInput represents the directory filters. Both are optional.
type ListServicesInput struct {
	Type   string
	Search string
}

// ListServicesOutput represents the output of a directory query.
type ListServicesOutput struct {
	Services []*entity.PetService
}

// ListServicesUseCase queries the verified services directory.
type ListServicesUseCase struct {
	serviceRepo adapter.PetServiceRepository
}

// NewListServicesUseCase creates a new ListServicesUseCase instance.
func NewListServicesUseCase(serviceRepo adapter.PetServiceRepository) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute returns matching services, best rated first.
func (uc *ListServicesUseCase) Execute(ctx context.Context, input ListServicesInput) (*ListServicesOutput, error) {
	filter := adapter.ServiceFilter{Search: strings.TrimSpace(input.Search)}

	if input.Type != "" && input.Type != "all" {
		serviceType := entity.ServiceType(input.Type)
		if !serviceType.IsValid() {
			return nil, domainerror.NewServiceError(
				domainerror.ErrCodeInvalidServiceType,
				"type must be one of: grooming, veterinary, hospital, store, training",
				domainerror.ErrInvalidServiceType,
			)
		}
		filter.Type = &serviceType
	}

	services, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []*entity.PetService{}
	}
	return &ListServicesOutput{Services: services}, nil
}

// GetServiceInput represents the input for loading one service.
type GetServiceInput struct {
	ServiceID uuid.UUID
}

// GetServiceOutput represents the output of loading one service.
type GetServiceOutput struct {
	Service *entity.PetService
}

// GetServiceUseCase loads a directory entry.
type GetServiceUseCase struct {
	serviceRepo adapter.PetServiceRepository
}

// NewGetServiceUseCase creates a new GetServiceUseCase instance.
func NewGetServiceUseCase(serviceRepo adapter.PetServiceRepository) *GetServiceUseCase {
	return &GetServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute returns the service.
func (uc *GetServiceUseCase) Execute(ctx context.Context, input GetServiceInput) (*GetServiceOutput, error) {
	service, err := findService(ctx, uc.serviceRepo, input.ServiceID)
	if err != nil {
		return nil, err
	}
	return &GetServiceOutput{Service: service}, nil
}

func findService(ctx context.Context, repo adapter.PetServiceRepository, id uuid.UUID) (*entity.PetService, error) {
	service, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrServiceNotFound) {
			return nil, domainerror.NewServiceError(
				domainerror.ErrCodeServiceNotFound,
				"service not found",
				domainerror.ErrServiceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	return service, nil
}
