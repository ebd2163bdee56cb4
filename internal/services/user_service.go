package services

import (
	"errors"

	"gorm.io/gorm"

	"finbuddy/internal/database"
	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/models"
)

// userService implements the user directory on top of the shared pool.
type userService struct {
	pool *database.Pool
}

// NewUserService creates a new UserServicer.
func NewUserService(pool *database.Pool) UserServicer {
	return &userService{pool: pool}
}

// EnsureUser looks up a user by external identifier and creates one on first
// sight. The lookup-then-insert pair is not atomic; the uniqueness constraint
// on external_id is the source of truth, so an insert that loses the race is
// resolved by re-reading the row the winner created.
func (s *userService) EnsureUser(externalID string) (uint, error) {
	if externalID == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "external identifier is required")
	}

	db, err := s.pool.DB()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var user models.User
	err = db.Where("external_id = ?", externalID).First(&user).Error
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{ExternalID: externalID}
	if createErr := db.Create(&user).Error; createErr != nil {
		// Expected when a concurrent request inserted the same identifier
		// first; the constraint rejected us, so the row must exist now.
		var existing models.User
		if retryErr := db.Where("external_id = ?", externalID).First(&existing).Error; retryErr == nil {
			return existing.ID, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
	}

	return user.ID, nil
}

// FindUser is the pure lookup used by paths that must not create a user.
func (s *userService) FindUser(externalID string) (uint, error) {
	db, err := s.pool.DB()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var user models.User
	if err := db.Where("external_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrForbidden
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.ID, nil
}
