package repositories

import (
	"sync"

	"mingle/internal/apperrors"
	"mingle/internal/models"
)

// MockMemberTypeRepository is an in-memory implementation of MemberTypeRepository.
type MockMemberTypeRepository struct {
	memberTypes map[string]models.MemberType
	mu          sync.RWMutex
}

// NewMockMemberTypeRepository creates a new instance of MockMemberTypeRepository.
func NewMockMemberTypeRepository() *MockMemberTypeRepository {
	return &MockMemberTypeRepository{
		memberTypes: make(map[string]models.MemberType),
	}
}

// GetAll returns all member types.
func (r *MockMemberTypeRepository) GetAll() ([]models.MemberType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memberTypeList := make([]models.MemberType, 0, len(r.memberTypes))
	for _, mt := range r.memberTypes {
		memberTypeList = append(memberTypeList, mt)
	}
	return memberTypeList, nil
}

// GetByID returns a member type by its ID.
func (r *MockMemberTypeRepository) GetByID(id string) (*models.MemberType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memberType, ok := r.memberTypes[id]
	if !ok {
		return nil, apperrors.NotFound("member type", id)
	}
	return &memberType, nil
}

// Create adds a member type under its tier-name ID.
func (r *MockMemberTypeRepository) Create(memberType *models.MemberType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.memberTypes[memberType.ID] = *memberType
	return nil
}

// Update modifies an existing member type.
func (r *MockMemberTypeRepository) Update(memberType *models.MemberType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memberTypes[memberType.ID]; !ok {
		return apperrors.NotFound("member type", memberType.ID)
	}
	r.memberTypes[memberType.ID] = *memberType
	return nil
}
