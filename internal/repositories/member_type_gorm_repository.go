package repositories

import (
	"errors"
	"fmt"

	"mingle/internal/apperrors"
	"mingle/internal/models"

	"gorm.io/gorm"
)

// GORMMemberTypeRepository is a GORM implementation of MemberTypeRepository.
type GORMMemberTypeRepository struct {
	db *gorm.DB
}

// NewGORMMemberTypeRepository creates a new instance of GORMMemberTypeRepository.
func NewGORMMemberTypeRepository(db *gorm.DB) *GORMMemberTypeRepository {
	return &GORMMemberTypeRepository{
		db: db,
	}
}

// GetAll returns all member types.
func (r *GORMMemberTypeRepository) GetAll() ([]models.MemberType, error) {
	var memberTypes []models.MemberType
	if err := r.db.Find(&memberTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list member types: %w", err)
	}
	return memberTypes, nil
}

// GetByID retrieves a member type by its ID.
func (r *GORMMemberTypeRepository) GetByID(id string) (*models.MemberType, error) {
	var memberType models.MemberType
	if err := r.db.First(&memberType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("member type", id)
		}
		return nil, fmt.Errorf("failed to get member type %s: %w", id, err)
	}
	return &memberType, nil
}

// Create inserts a member type. IDs are tier names ("basic"), never generated.
func (r *GORMMemberTypeRepository) Create(memberType *models.MemberType) error {
	if err := r.db.Create(memberType).Error; err != nil {
		return fmt.Errorf("failed to create member type: %w", err)
	}
	return nil
}

// Update saves an existing member type record.
func (r *GORMMemberTypeRepository) Update(memberType *models.MemberType) error {
	res := r.db.Model(&models.MemberType{}).Where("id = ?", memberType.ID).Updates(map[string]interface{}{
		"discount":          memberType.Discount,
		"month_posts_limit": memberType.MonthPostsLimit,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update member type %s: %w", memberType.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("member type", memberType.ID)
	}
	return nil
}
