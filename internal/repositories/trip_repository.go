package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id uint) (*db_models.Trip, error)
	// FindByIDWithDestinations preloads the trip's destinations sorted by
	// order_index, with the primary key as the stable tie-breaker.
	FindByIDWithDestinations(ctx context.Context, id uint) (*db_models.Trip, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Trip, error)
	// DeleteCascade removes the trip and all of its destinations in one
	// transaction; no orphaned destination rows survive.
	DeleteCascade(ctx context.Context, id uint) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func orderedDestinations(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, id ASC")
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uint) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByIDWithDestinations(ctx context.Context, id uint) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Destinations", orderedDestinations).
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Destinations", orderedDestinations).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.Destination{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Trip{}, id).Error
	})
}
