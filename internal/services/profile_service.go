package services

import (
	"mingle/internal/models"
	"mingle/internal/repositories"
)

// ProfileService handles business logic related to profiles.
type ProfileService struct {
	profRepo  repositories.ProfileRepository
	integrity *IntegrityChecker
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profRepo repositories.ProfileRepository, integrity *IntegrityChecker) *ProfileService {
	return &ProfileService{
		profRepo:  profRepo,
		integrity: integrity,
	}
}

// UpdateProfileInput is a partial profile update. Nil fields are left
// unchanged; userId is immutable and deliberately absent.
type UpdateProfileInput struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *string `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeID *string `json:"memberTypeId"`
}

// GetAllProfiles retrieves all profiles.
func (s *ProfileService) GetAllProfiles() ([]models.Profile, error) {
	return s.profRepo.GetAll()
}

// GetProfileByID retrieves a single profile by its ID.
func (s *ProfileService) GetProfileByID(id string) (*models.Profile, error) {
	return s.profRepo.GetByID(id)
}

// GetProfileByUserID retrieves the profile belonging to a user, if any.
func (s *ProfileService) GetProfileByUserID(userID string) (*models.Profile, error) {
	return s.profRepo.GetByUserID(userID)
}

// CreateProfile creates a profile after checking every precondition: the
// owning user exists, has no profile yet, and the member type is valid.
// All checks run before the write.
func (s *ProfileService) CreateProfile(profile *models.Profile) error {
	if err := s.integrity.CheckUserReference(profile.UserID); err != nil {
		return err
	}
	if err := s.integrity.CheckNoProfileForUser(profile.UserID); err != nil {
		return err
	}
	if err := s.integrity.CheckMemberTypeReference(profile.MemberTypeID); err != nil {
		return err
	}
	return s.profRepo.Create(profile)
}

// UpdateProfile applies a partial update to an existing profile.
func (s *ProfileService) UpdateProfile(id string, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.MemberTypeID != nil {
		if err := s.integrity.CheckMemberTypeReference(*input.MemberTypeID); err != nil {
			return nil, err
		}
		profile.MemberTypeID = *input.MemberTypeID
	}
	if input.Avatar != nil {
		profile.Avatar = *input.Avatar
	}
	if input.Sex != nil {
		profile.Sex = *input.Sex
	}
	if input.Birthday != nil {
		profile.Birthday = *input.Birthday
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.Street != nil {
		profile.Street = *input.Street
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if err := s.profRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes a profile. No cascade: posts and subscriptions of the
// owning user are untouched.
func (s *ProfileService) DeleteProfile(id string) (*models.Profile, error) {
	profile, err := s.profRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.profRepo.Delete(id); err != nil {
		return nil, err
	}
	return profile, nil
}
