package repositories

import (
	"fmt"

	"mingle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSubscriptionRepository is a GORM implementation of SubscriptionRepository.
type GORMSubscriptionRepository struct {
	db *gorm.DB
}

// NewGORMSubscriptionRepository creates a new instance of GORMSubscriptionRepository.
func NewGORMSubscriptionRepository(db *gorm.DB) *GORMSubscriptionRepository {
	return &GORMSubscriptionRepository{
		db: db,
	}
}

// Create inserts a follow edge, generating an ID when none was supplied.
func (r *GORMSubscriptionRepository) Create(sub *models.Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if err := r.db.Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription %s -> %s: %w", sub.FollowerID, sub.TargetID, err)
	}
	return nil
}

// Delete removes the edge identified by the (follower, target) pair.
func (r *GORMSubscriptionRepository) Delete(followerID, targetID string) error {
	res := r.db.Where("follower_id = ? AND target_id = ?", followerID, targetID).Delete(&models.Subscription{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription %s -> %s: %w", followerID, targetID, res.Error)
	}
	return nil
}

// Exists reports whether follower currently follows target.
func (r *GORMSubscriptionRepository) Exists(followerID, targetID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("follower_id = ? AND target_id = ?", followerID, targetID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check subscription %s -> %s: %w", followerID, targetID, err)
	}
	return count > 0, nil
}

// FollowerIDs returns the ids of users following target.
func (r *GORMSubscriptionRepository) FollowerIDs(targetID string) ([]string, error) {
	ids := []string{}
	err := r.db.Model(&models.Subscription{}).
		Where("target_id = ?", targetID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers of %s: %w", targetID, err)
	}
	return ids, nil
}

// FollowingIDs returns the ids of users that follower follows.
func (r *GORMSubscriptionRepository) FollowingIDs(followerID string) ([]string, error) {
	ids := []string{}
	err := r.db.Model(&models.Subscription{}).
		Where("follower_id = ?", followerID).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list following of %s: %w", followerID, err)
	}
	return ids, nil
}

// DeleteAllForUser removes every edge in which the user appears on either side.
func (r *GORMSubscriptionRepository) DeleteAllForUser(userID string) error {
	res := r.db.Where("follower_id = ? OR target_id = ?", userID, userID).Delete(&models.Subscription{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscriptions for user %s: %w", userID, res.Error)
	}
	return nil
}
