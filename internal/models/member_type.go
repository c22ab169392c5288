package models

// Member type tiers seeded at startup.
const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// MemberType is a subscription tier referenced by profiles. Member types are
// seed data: they can be read and updated but never deleted.
type MemberType struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Discount        int    `json:"discount" gorm:"not null" validate:"min=0,max=100"`
	MonthPostsLimit int    `json:"monthPostsLimit" gorm:"not null" validate:"min=0"`
}
