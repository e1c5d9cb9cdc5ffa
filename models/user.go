package models

import "time"

// User represents an account entity used for authentication and authorization.
// Credential fields are write-only: they are accepted from requests but never
// serialized back to clients.
type User struct {
	// ID is the sequential identifier assigned at registration.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password holds the plain-text password received during registration.
	// It is never persisted and never serialized.
	Password string `json:"-"`

	// PasswordHash is the derived secret stored instead of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials holds the login pair submitted to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
