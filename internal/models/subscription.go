package models

// Subscription is a single "follower follows target" edge. The pair is unique:
// subscribing twice is a no-op at the service layer, and the index backs that
// up at the store level.
type Subscription struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FollowerID string `json:"followerId" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_follower_target"`
	TargetID   string `json:"targetId" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_follower_target"`
}
