package services

import (
	"context"
	"strings"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type DestinationServiceInterface interface {
	// AddDestination appends to the trip's ordered list: the new
	// order_index is max(existing)+1, never refilling gaps.
	AddDestination(ctx context.Context, ownerID uint, tripID uint, request request_models.AddDestinationRequest) (*response_models.DestinationResponse, error)
	// UpdateDestination applies the non-nil fields of the partial payload;
	// name, address and order_index cannot be changed here.
	UpdateDestination(ctx context.Context, ownerID uint, destID uint, request request_models.UpdateDestinationRequest) (*response_models.DestinationResponse, error)
	// ReorderDestinations assigns order_index = position for each listed ID
	// that exists and belongs to the trip; anything else is skipped without
	// error. Omitted destinations keep their old index, so a partial list
	// yields best-effort ordering only.
	ReorderDestinations(ctx context.Context, ownerID uint, tripID uint, orderedIDs []uint) error
	// DeleteDestination removes one destination; siblings keep their
	// indices (gaps are expected).
	DeleteDestination(ctx context.Context, ownerID uint, destID uint) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	tripRepo        repositories.TripRepository
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	tripRepo repositories.TripRepository,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		tripRepo:        tripRepo,
	}
}

func (s *DestinationService) AddDestination(
	ctx context.Context,
	ownerID uint,
	tripID uint,
	request request_models.AddDestinationRequest,
) (*response_models.DestinationResponse, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if err := RequireOwnsTrip(ownerID, trip); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" || request.Lat == nil || request.Lon == nil {
		return nil, utils.ErrDestinationRequired
	}
	if len(name) > maxNameLength {
		return nil, utils.ErrNameTooLong
	}

	dest := &db_models.Destination{
		Name:   name,
		Lat:    *request.Lat,
		Lng:    *request.Lon,
		TripID: trip.ID,
	}
	if err := s.destinationRepo.Insert(ctx, dest); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := response_models.BuildDestinationResponse(dest)
	return &out, nil
}

func (s *DestinationService) UpdateDestination(
	ctx context.Context,
	ownerID uint,
	destID uint,
	request request_models.UpdateDestinationRequest,
) (*response_models.DestinationResponse, error) {
	dest, _, err := s.resolveOwned(ctx, ownerID, destID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Lat != nil {
		fields["lat"] = *request.Lat
	}
	if request.Lng != nil {
		fields["lng"] = *request.Lng
	}
	if request.VisitDate != nil {
		fields["visit_date"] = *request.VisitDate
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}

	if len(fields) > 0 {
		if err := s.destinationRepo.UpdateFields(ctx, dest.ID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
		dest, err = s.destinationRepo.FindByID(ctx, dest.ID)
		if err != nil || dest == nil {
			return nil, utils.ErrDatabaseError
		}
	}

	out := response_models.BuildDestinationResponse(dest)
	return &out, nil
}

func (s *DestinationService) ReorderDestinations(ctx context.Context, ownerID uint, tripID uint, orderedIDs []uint) error {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := RequireOwnsTrip(ownerID, trip); err != nil {
		return err
	}

	if err := s.destinationRepo.Reorder(ctx, tripID, orderedIDs); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, ownerID uint, destID uint) error {
	dest, _, err := s.resolveOwned(ctx, ownerID, destID)
	if err != nil {
		return err
	}

	if err := s.destinationRepo.Delete(ctx, dest.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// resolveOwned loads the destination and its trip and runs the ownership
// guard: unknown id is NotFound, foreign owner is Forbidden.
func (s *DestinationService) resolveOwned(ctx context.Context, ownerID uint, destID uint) (*db_models.Destination, *db_models.Trip, error) {
	dest, err := s.destinationRepo.FindByID(ctx, destID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if dest == nil {
		return nil, nil, utils.ErrDestinationNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, dest.TripID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if err := RequireOwnsDestination(ownerID, dest, trip); err != nil {
		return nil, nil, err
	}
	return dest, trip, nil
}
