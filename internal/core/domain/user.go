package domain

import "errors"

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 4

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidEmail = errors.New("invalid email address")
var ErrWeakPassword = errors.New("password too short")
var ErrEmptyUpdate = errors.New("no fields to update")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Roles holds the role flags of a user.
type Roles struct {
	Admin bool `bson:"admin" json:"admin"`
}

// User is an account addressable by id or, at the API boundary, by email.
// Exactly one user exists per email (case-sensitive as stored).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        Roles
}
