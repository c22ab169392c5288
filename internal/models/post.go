package models

// Post is a piece of content owned by a user. UserID is set at creation and
// never changes afterwards.
type Post struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title   string `json:"title" gorm:"type:varchar(255);not null" validate:"required"`
	Content string `json:"content" gorm:"type:text;not null" validate:"required"`
	UserID  string `json:"userId" gorm:"type:varchar(36);not null;index" validate:"required"`
}
