package services

import (
	"context"
	"strings"

	"roamio/internal/models/db_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

const maxNameLength = 140

type TripServiceInterface interface {
	// ListTrips returns the caller's trips, destinations embedded in order.
	ListTrips(ctx context.Context, ownerID uint) ([]response_models.TripResponse, error)
	CreateTrip(ctx context.Context, ownerID uint, name string) (*response_models.TripResponse, error)
	// DeleteTrip removes the trip and its destinations atomically. NotFound
	// if the id is unknown, Forbidden if it belongs to someone else.
	DeleteTrip(ctx context.Context, ownerID uint, tripID uint) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) ListTrips(ctx context.Context, ownerID uint) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, response_models.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID uint, name string) (*response_models.TripResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.ErrTripNameRequired
	}
	if len(name) > maxNameLength {
		return nil, utils.ErrNameTooLong
	}

	trip := &db_models.Trip{Name: name, UserID: ownerID}
	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := response_models.BuildTripResponse(trip)
	return &out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, ownerID uint, tripID uint) error {
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

	if err := s.tripRepo.DeleteCascade(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
