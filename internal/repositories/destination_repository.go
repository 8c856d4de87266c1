package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type DestinationRepository interface {
	// Insert appends the destination to its trip: order_index becomes
	// max(existing)+1 (1 for an empty trip), computed and written in one
	// transaction. Indices grow monotonically and gaps from earlier
	// deletes are never refilled.
	Insert(ctx context.Context, dest *db_models.Destination) error
	FindByID(ctx context.Context, id uint) (*db_models.Destination, error)
	ListByTripID(ctx context.Context, tripID uint) ([]db_models.Destination, error)
	// UpdateFields applies a partial update; keys absent from the map are
	// left untouched.
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	// Reorder assigns order_index = position for every listed ID that both
	// exists and belongs to the trip; any other ID is silently skipped.
	// IDs of the trip omitted from the list keep their old index. The whole
	// pass is one all-or-nothing transaction.
	Reorder(ctx context.Context, tripID uint, orderedIDs []uint) error
	// Delete removes the destination without renumbering its siblings.
	Delete(ctx context.Context, id uint) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Insert(ctx context.Context, dest *db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIndex int
		err := tx.Model(&db_models.Destination{}).
			Where("trip_id = ?", dest.TripID).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxIndex).Error
		if err != nil {
			return err
		}
		dest.OrderIndex = maxIndex + 1
		return tx.Create(dest).Error
	})
}

func (r *destinationRepository) FindByID(ctx context.Context, id uint) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).First(&dest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) ListByTripID(ctx context.Context, tripID uint) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("order_index ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *destinationRepository) Reorder(ctx context.Context, tripID uint, orderedIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			err := tx.Model(&db_models.Destination{}).
				Where("id = ? AND trip_id = ?", id, tripID).
				Update("order_index", position).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *destinationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.Destination{}, id).Error
}
