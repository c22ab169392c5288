package services_test

import (
	"testing"

	"mingle/internal/apperrors"
	"mingle/internal/models"
	"mingle/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo is a testify mock of repositories.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProfileRepo is a testify mock of repositories.ProfileRepository.
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetAll() ([]models.Profile, error) {
	args := m.Called()
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByID(id string) (*models.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) Create(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepo) Update(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMemberTypeRepo is a testify mock of repositories.MemberTypeRepository.
type MockMemberTypeRepo struct {
	mock.Mock
}

func (m *MockMemberTypeRepo) GetAll() ([]models.MemberType, error) {
	args := m.Called()
	return args.Get(0).([]models.MemberType), args.Error(1)
}

func (m *MockMemberTypeRepo) GetByID(id string) (*models.MemberType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MemberType), args.Error(1)
}

func (m *MockMemberTypeRepo) Create(memberType *models.MemberType) error {
	args := m.Called(memberType)
	return args.Error(0)
}

func (m *MockMemberTypeRepo) Update(memberType *models.MemberType) error {
	args := m.Called(memberType)
	return args.Error(0)
}

func newProfileServiceWithMocks() (*services.ProfileService, *MockUserRepo, *MockProfileRepo, *MockMemberTypeRepo) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	memberTypeRepo := new(MockMemberTypeRepo)
	integrity := services.NewIntegrityChecker(userRepo, profileRepo, memberTypeRepo)
	svc := services.NewProfileService(profileRepo, integrity)
	return svc, userRepo, profileRepo, memberTypeRepo
}

func validProfile() *models.Profile {
	return &models.Profile{
		Avatar: "a.png", Sex: "male", Birthday: "1985-05-05",
		Country: "DE", Street: "Hauptstr", City: "Berlin",
		MemberTypeID: models.MemberTypeBasic, UserID: "u1",
	}
}

func TestProfileService_CreateProfile(t *testing.T) {
	svc, userRepo, profileRepo, memberTypeRepo := newProfileServiceWithMocks()
	profile := validProfile()

	userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	profileRepo.On("GetByUserID", "u1").Return(nil, apperrors.NotFound("profile for user", "u1")).Once()
	memberTypeRepo.On("GetByID", models.MemberTypeBasic).Return(&models.MemberType{ID: models.MemberTypeBasic}, nil).Once()
	profileRepo.On("Create", profile).Return(nil).Once()

	err := svc.CreateProfile(profile)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
	memberTypeRepo.AssertExpectations(t)
}

func TestProfileService_CreateProfileUnknownUser(t *testing.T) {
	svc, userRepo, profileRepo, _ := newProfileServiceWithMocks()
	profile := validProfile()

	userRepo.On("GetByID", "u1").Return(nil, apperrors.NotFound("user", "u1")).Once()

	err := svc.CreateProfile(profile)
	assert.ErrorIs(t, err, apperrors.ErrReference)
	// The failed check aborts before any write.
	profileRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProfileService_CreateProfileDuplicate(t *testing.T) {
	svc, userRepo, profileRepo, _ := newProfileServiceWithMocks()
	profile := validProfile()

	userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	profileRepo.On("GetByUserID", "u1").Return(&models.Profile{ID: "existing", UserID: "u1"}, nil).Once()

	err := svc.CreateProfile(profile)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProfileService_CreateProfileUnknownMemberType(t *testing.T) {
	svc, userRepo, profileRepo, memberTypeRepo := newProfileServiceWithMocks()
	profile := validProfile()
	profile.MemberTypeID = "platinum"

	userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	profileRepo.On("GetByUserID", "u1").Return(nil, apperrors.NotFound("profile for user", "u1")).Once()
	memberTypeRepo.On("GetByID", "platinum").Return(nil, apperrors.NotFound("member type", "platinum")).Once()

	err := svc.CreateProfile(profile)
	assert.ErrorIs(t, err, apperrors.ErrReference)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProfileService_UpdateProfileNotFound(t *testing.T) {
	svc, _, profileRepo, _ := newProfileServiceWithMocks()

	profileRepo.On("GetByID", "missing").Return(nil, apperrors.NotFound("profile", "missing")).Once()

	city := "Utrecht"
	_, err := svc.UpdateProfile("missing", services.UpdateProfileInput{City: &city})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileService_UpdateProfileChecksMemberType(t *testing.T) {
	svc, _, profileRepo, memberTypeRepo := newProfileServiceWithMocks()
	existing := validProfile()
	existing.ID = "p1"

	profileRepo.On("GetByID", "p1").Return(existing, nil).Once()
	memberTypeRepo.On("GetByID", "platinum").Return(nil, apperrors.NotFound("member type", "platinum")).Once()

	bad := "platinum"
	_, err := svc.UpdateProfile("p1", services.UpdateProfileInput{MemberTypeID: &bad})
	assert.ErrorIs(t, err, apperrors.ErrReference)
	profileRepo.AssertNotCalled(t, "Update", mock.Anything)
}
