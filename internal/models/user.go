package models

import (
	"time"
)

// UserDB represents a user row in the database
type UserDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	Email     string     `json:"email" db:"email"`           // Unique email
	Username  string     `json:"username" db:"username"`     // Display name, defaults to the email local part
	Password  string     `json:"-" db:"password"`            // Bcrypt hash
	Avatar    *string    `json:"avatar" db:"avatar"`         // Optional avatar URL
	LastLogin *time.Time `json:"last_login" db:"last_login"` // Set on every successful login
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
}
