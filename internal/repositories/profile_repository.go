package repositories

import (
	"mingle/internal/models"
)

// ProfileRepository defines the interface for profile data access.
// GetByUserID returns apperrors.ErrNotFound when the user has no profile;
// callers that treat a missing profile as "absent" match on that.
type ProfileRepository interface {
	GetAll() ([]models.Profile, error)
	GetByID(id string) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	Delete(id string) error
}
