package repositories

import (
	"sync"

	"mingle/internal/models"

	"github.com/google/uuid"
)

// MockSubscriptionRepository is an in-memory implementation of SubscriptionRepository.
// Edges are kept in insertion order so derived id lists are deterministic.
type MockSubscriptionRepository struct {
	subs []models.Subscription
	mu   sync.RWMutex
}

// NewMockSubscriptionRepository creates a new instance of MockSubscriptionRepository.
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{}
}

// Create adds a follow edge.
func (r *MockSubscriptionRepository) Create(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	r.subs = append(r.subs, *sub)
	return nil
}

// Delete removes the edge identified by the (follower, target) pair.
func (r *MockSubscriptionRepository) Delete(followerID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.FollowerID == followerID && s.TargetID == targetID {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

// Exists reports whether follower currently follows target.
func (r *MockSubscriptionRepository) Exists(followerID, targetID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subs {
		if s.FollowerID == followerID && s.TargetID == targetID {
			return true, nil
		}
	}
	return false, nil
}

// FollowerIDs returns the ids of users following target.
func (r *MockSubscriptionRepository) FollowerIDs(targetID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := []string{}
	for _, s := range r.subs {
		if s.TargetID == targetID {
			ids = append(ids, s.FollowerID)
		}
	}
	return ids, nil
}

// FollowingIDs returns the ids of users that follower follows.
func (r *MockSubscriptionRepository) FollowingIDs(followerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := []string{}
	for _, s := range r.subs {
		if s.FollowerID == followerID {
			ids = append(ids, s.TargetID)
		}
	}
	return ids, nil
}

// DeleteAllForUser removes every edge in which the user appears on either side.
func (r *MockSubscriptionRepository) DeleteAllForUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.subs[:0]
	for _, s := range r.subs {
		if s.FollowerID != userID && s.TargetID != userID {
			kept = append(kept, s)
		}
	}
	r.subs = kept
	return nil
}
