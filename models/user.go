package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier, stored lower-cased.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`

	// Status marks whether the account is usable ("active").
	Status string `json:"status"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
