package repositories

import (
	"errors"
	"fmt"

	"mingle/internal/apperrors"
	"mingle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// GetAll returns all profiles.
func (r *GORMProfileRepository) GetAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// GetByID retrieves a profile by its ID.
func (r *GORMProfileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile", id)
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the profile belonging to a user, if any.
func (r *GORMProfileRepository) GetByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile for user", userID)
		}
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Create inserts a new profile, generating an ID when none was supplied.
func (r *GORMProfileRepository) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Update saves an existing profile record. UserID is immutable and not touched.
func (r *GORMProfileRepository) Update(profile *models.Profile) error {
	res := r.db.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"avatar":         profile.Avatar,
		"sex":            profile.Sex,
		"birthday":       profile.Birthday,
		"country":        profile.Country,
		"street":         profile.Street,
		"city":           profile.City,
		"member_type_id": profile.MemberTypeID,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update profile %s: %w", profile.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("profile", profile.ID)
	}
	return nil
}

// Delete removes a profile by its ID.
func (r *GORMProfileRepository) Delete(id string) error {
	res := r.db.Delete(&models.Profile{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("profile", id)
	}
	return nil
}
