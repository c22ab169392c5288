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

// SubscriptionService owns the directed follow graph between users. A single
// canonical edge per "follower follows target" fact backs every view of the
// relation: a user's subscribedToUserIds (their followers), the follower list
// and the following list.
type SubscriptionService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	mqClient *rabbitmq.Client
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	mqClient *rabbitmq.Client,
) *SubscriptionService {
	return &SubscriptionService{
		userRepo: userRepo,
		subRepo:  subRepo,
		mqClient: mqClient,
	}
}

// Subscribe records that follower follows target and returns the target user.
// Subscribing twice is a no-op returning the current state. Both users must
// exist; self-subscription is rejected so a user never appears in their own
// follower list.
func (s *SubscriptionService) Subscribe(followerID, targetID string) (*models.User, error) {
	if followerID == targetID {
		return nil, apperrors.Precondition("a user cannot subscribe to themselves")
	}
	if _, err := s.userRepo.GetByID(followerID); err != nil {
		return nil, err
	}
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subRepo.Exists(followerID, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = s.subRepo.Create(&models.Subscription{FollowerID: followerID, TargetID: targetID})
		if err != nil {
			return nil, err
		}
		s.publishEvent("user.subscribed", followerID, targetID)
	}

	if err := s.AttachFollowerIDs(target); err != nil {
		return nil, err
	}
	return target, nil
}

// Unsubscribe removes the follower -> target edge and returns the target user.
// Unsubscribing without a prior subscription is a precondition failure.
func (s *SubscriptionService) Unsubscribe(followerID, targetID string) (*models.User, error) {
	if _, err := s.userRepo.GetByID(followerID); err != nil {
		return nil, err
	}
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subRepo.Exists(followerID, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Precondition("user " + followerID + " is not subscribed to " + targetID)
	}

	if err := s.subRepo.Delete(followerID, targetID); err != nil {
		return nil, err
	}
	s.publishEvent("user.unsubscribed", followerID, targetID)

	if err := s.AttachFollowerIDs(target); err != nil {
		return nil, err
	}
	return target, nil
}

// Followers returns the users following userID (the members of the user's own
// subscribedToUserIds list).
func (s *SubscriptionService) Followers(userID string) ([]models.User, error) {
	ids, err := s.subRepo.FollowerIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

// Following returns the users that userID follows (the users whose
// subscribedToUserIds list contains this user's id).
func (s *SubscriptionService) Following(userID string) ([]models.User, error) {
	ids, err := s.subRepo.FollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

// AttachFollowerIDs fills in the user's derived subscribedToUserIds field.
func (s *SubscriptionService) AttachFollowerIDs(user *models.User) error {
	ids, err := s.subRepo.FollowerIDs(user.ID)
	if err != nil {
		return err
	}
	user.SubscribedToUserIDs = ids
	return nil
}

// resolveUsers looks each id up individually. An id whose user vanished under
// a concurrent delete is skipped rather than failing the whole listing.
func (s *SubscriptionService) resolveUsers(ids []string) ([]models.User, error) {
	users := []models.User{}
	for _, id := range ids {
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if err := s.AttachFollowerIDs(user); err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// publishEvent emits a subscription-graph event. Publishing is best-effort: a
// missing or failing broker never fails the mutation.
func (s *SubscriptionService) publishEvent(event, followerID, targetID string) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":      event,
		"followerId": followerID,
		"targetId":   targetID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s -> %s: %v", event, followerID, targetID, err)
	}
}
