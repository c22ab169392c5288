package repositories

import (
	"sync"

	"mingle/internal/apperrors"
	"mingle/internal/models"

	"github.com/google/uuid"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
type MockProfileRepository struct {
	profiles map[string]models.Profile
	mu       sync.RWMutex
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.Profile),
	}
}

// GetAll returns all profiles.
func (r *MockProfileRepository) GetAll() ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profileList := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profileList = append(profileList, p)
	}
	return profileList, nil
}

// GetByID returns a profile by its ID.
func (r *MockProfileRepository) GetByID(id string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, apperrors.NotFound("profile", id)
	}
	return &profile, nil
}

// GetByUserID returns the profile belonging to a user, if any.
func (r *MockProfileRepository) GetByUserID(userID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.UserID == userID {
			profile := p
			return &profile, nil
		}
	}
	return nil, apperrors.NotFound("profile for user", userID)
}

// Create adds a new profile.
func (r *MockProfileRepository) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	r.profiles[profile.ID] = *profile
	return nil
}

// Update modifies an existing profile.
func (r *MockProfileRepository) Update(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return apperrors.NotFound("profile", profile.ID)
	}
	r.profiles[profile.ID] = *profile
	return nil
}

// Delete removes a profile by its ID.
func (r *MockProfileRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return apperrors.NotFound("profile", id)
	}
	delete(r.profiles, id)
	return nil
}
