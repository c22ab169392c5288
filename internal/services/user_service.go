package services

import (
	"encoding/json"
	"errors"
	"log"

	"mingle/internal/apperrors"
	"mingle/internal/models"
	"mingle/internal/repositories"
	"mingle/pkg/rabbitmq"
)

// UserService handles user CRUD and cascading deletion.
type UserService struct {
	userRepo repositories.UserRepository
	profRepo repositories.ProfileRepository
	postRepo repositories.PostRepository
	subRepo  repositories.SubscriptionRepository
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	profRepo repositories.ProfileRepository,
	postRepo repositories.PostRepository,
	subRepo repositories.SubscriptionRepository,
	mqClient *rabbitmq.Client,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		profRepo: profRepo,
		postRepo: postRepo,
		subRepo:  subRepo,
		mqClient: mqClient,
	}
}

// UpdateUserInput is a partial user update. Nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// GetAllUsers retrieves all users with their follower lists attached.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if err := s.attachFollowerIDs(&users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// GetUserByID retrieves a single user with their follower list attached.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.attachFollowerIDs(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser creates a new user.
func (s *UserService) CreateUser(user *models.User) error {
	if err := s.userRepo.Create(user); err != nil {
		return err
	}
	user.SubscribedToUserIDs = []string{}
	s.publishEvent("user.created", user.ID)
	return nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if err := s.attachFollowerIDs(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and everything depending on them, as one logical
// unit of work: the profile, every post, every subscription edge touching the
// user, then the user record itself. Dependents go first so concurrent
// readers never see a dangling foreign key. There is no rollback: a failing
// step aborts the rest but already-deleted dependents stay deleted.
func (s *UserService) DeleteUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.profRepo.GetByUserID(id)
	switch {
	case err == nil:
		if err := s.profRepo.Delete(profile.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// no profile, nothing to cascade
	default:
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(id)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if err := s.postRepo.Delete(post.ID); err != nil {
			return nil, err
		}
	}

	if err := s.subRepo.DeleteAllForUser(id); err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}

	s.publishEvent("user.deleted", id)
	user.SubscribedToUserIDs = []string{}
	return user, nil
}

func (s *UserService) attachFollowerIDs(user *models.User) error {
	ids, err := s.subRepo.FollowerIDs(user.ID)
	if err != nil {
		return err
	}
	user.SubscribedToUserIDs = ids
	return nil
}

// publishEvent emits a user lifecycle event, best-effort.
func (s *UserService) publishEvent(event, userID string) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":  event,
		"userId": userID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", event, userID, err)
	}
}
