package repositories

import (
	"mingle/internal/models"
)

// MemberTypeRepository defines the interface for member type data access.
// Member types are seed data: Create exists for the startup seeder, and there
// is deliberately no Delete.
type MemberTypeRepository interface {
	GetAll() ([]models.MemberType, error)
	GetByID(id string) (*models.MemberType, error)
	Create(memberType *models.MemberType) error
	Update(memberType *models.MemberType) error
}
