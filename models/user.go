package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Immutable after registration.
	Username string `json:"username"`

	// Password carries the plaintext password on inbound requests only.
	// It is never persisted and never written to a response.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
