package models

import "time"

// Session is the login state the client persists locally so that a user
// does not have to re-enter credentials on every start while the token
// is still valid.
type Session struct {
	// UserID is the owner identifier extracted from the token's "sub" claim.
	UserID int64 `json:"user_id"`

	// Username is the login name the session was established for.
	Username string `json:"username"`

	// Token is the bearer token issued at login.
	Token string `json:"token"`

	// SavedAt is the timestamp when the session was stored.
	SavedAt time.Time `json:"saved_at"`
}
