package models

import "time"

// AuthToken is the opaque bearer token for a live session. A user holds at
// most one token at a time; login reuses the existing row and logout deletes
// it by key.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(40);primarykey" json:"key"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
