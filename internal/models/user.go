package models

// User represents a member of the network.
//
// SubscribedToUserIDs is not a column: it is derived from the subscriptions
// table (the ids of users following this one) and filled in by the service
// layer before the user goes over the wire.
type User struct {
	ID                  string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName           string   `json:"firstName" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	LastName            string   `json:"lastName" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Email               string   `json:"email" gorm:"type:varchar(255);not null" validate:"required,email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds" gorm:"-"`
}
