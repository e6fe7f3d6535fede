package models

import "errors"

// Well-known failure modes surfaced by the services. Handlers branch on
// these to pick a response status and message; anything else is treated
// as an unexpected server error.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("password incorrect")
	ErrPasswordHash       = errors.New("could not hash password")
	ErrUserSave           = errors.New("could not save user")
	ErrCoffeeNotFound     = errors.New("coffee not found")
)
