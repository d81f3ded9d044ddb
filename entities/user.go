package entities

import "time"

// User rows are created implicitly on the first request carrying a new
// x-username value; they are never deleted.
type User struct {
	UserID    uint   `gorm:"primaryKey" json:"user_id"`
	Username  string `gorm:"uniqueIndex" json:"username"`
	CreatedAt time.Time
}
