package repositories

import (
	"mingle/internal/models"
)

// SubscriptionRepository defines the interface for the follow-edge store.
// One Subscription row means "follower follows target"; both directions of
// the graph are derived from the same rows.
type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	Delete(followerID, targetID string) error
	Exists(followerID, targetID string) (bool, error)
	// FollowerIDs returns the ids of users following target.
	FollowerIDs(targetID string) ([]string, error)
	// FollowingIDs returns the ids of users that follower follows.
	FollowingIDs(followerID string) ([]string, error)
	// DeleteAllForUser removes every edge in which the user appears on
	// either side. Used by cascade deletion.
	DeleteAllForUser(userID string) error
}
