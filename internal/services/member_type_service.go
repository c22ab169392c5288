package services

import (
	"errors"
	"log"

	"mingle/internal/apperrors"
	"mingle/internal/models"
	"mingle/internal/repositories"
)

// MemberTypeService handles business logic related to member types. Member
// types are seed data: they can be listed, read and updated, never deleted.
type MemberTypeService struct {
	memberTypeRepo repositories.MemberTypeRepository
}

// NewMemberTypeService creates a new MemberTypeService.
func NewMemberTypeService(memberTypeRepo repositories.MemberTypeRepository) *MemberTypeService {
	return &MemberTypeService{
		memberTypeRepo: memberTypeRepo,
	}
}

// UpdateMemberTypeInput is a partial member type update.
type UpdateMemberTypeInput struct {
	Discount        *int `json:"discount" validate:"omitempty,min=0,max=100"`
	MonthPostsLimit *int `json:"monthPostsLimit" validate:"omitempty,min=0"`
}

// GetAllMemberTypes retrieves all member types.
func (s *MemberTypeService) GetAllMemberTypes() ([]models.MemberType, error) {
	return s.memberTypeRepo.GetAll()
}

// GetMemberTypeByID retrieves a single member type by its ID.
func (s *MemberTypeService) GetMemberTypeByID(id string) (*models.MemberType, error) {
	return s.memberTypeRepo.GetByID(id)
}

// UpdateMemberType applies a partial update to an existing member type.
func (s *MemberTypeService) UpdateMemberType(id string, input UpdateMemberTypeInput) (*models.MemberType, error) {
	memberType, err := s.memberTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Discount != nil {
		memberType.Discount = *input.Discount
	}
	if input.MonthPostsLimit != nil {
		memberType.MonthPostsLimit = *input.MonthPostsLimit
	}
	if err := s.memberTypeRepo.Update(memberType); err != nil {
		return nil, err
	}
	return memberType, nil
}

// SeedMemberTypes inserts the fixed tier set when missing. Existing tiers are
// left untouched so operator updates survive restarts on durable backends.
func (s *MemberTypeService) SeedMemberTypes() error {
	seeds := []models.MemberType{
		{ID: models.MemberTypeBasic, Discount: 0, MonthPostsLimit: 20},
		{ID: models.MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100},
	}
	for _, seed := range seeds {
		_, err := s.memberTypeRepo.GetByID(seed.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := s.memberTypeRepo.Create(&seed); err != nil {
			return err
		}
		log.Printf("Seeded member type %s", seed.ID)
	}
	return nil
}
