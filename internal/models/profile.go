package models

// Profile holds the optional per-user profile. At most one profile may exist
// per user; MemberTypeID must reference a seeded member type.
type Profile struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Avatar       string `json:"avatar" gorm:"type:varchar(255)" validate:"required"`
	Sex          string `json:"sex" gorm:"type:varchar(10)" validate:"required"`
	Birthday     string `json:"birthday" gorm:"type:varchar(32)" validate:"required"`
	Country      string `json:"country" gorm:"type:varchar(100)" validate:"required"`
	Street       string `json:"street" gorm:"type:varchar(255)" validate:"required"`
	City         string `json:"city" gorm:"type:varchar(100)" validate:"required"`
	MemberTypeID string `json:"memberTypeId" gorm:"type:varchar(36);not null;index" validate:"required"`
	UserID       string `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex" validate:"required"`
}
