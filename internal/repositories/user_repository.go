package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type UserRepository interface {
	// Insert persists a new user. The very first user in the system is
	// promoted to admin inside the same transaction.
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	// FindByIdentifier matches the username or the email. A NULL email
	// column never equals a non-null identifier, so legacy rows without an
	// email cannot be matched by accident.
	FindByIdentifier(ctx context.Context, identifier string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.User{}).Count(&count).Error; err != nil {
			return err
		}
		user.IsAdmin = count == 0
		return tx.Create(user).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		Order("id ASC").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
