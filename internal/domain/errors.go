package domain

import "errors"

var (
	// ErrQuizNotFound indicates an unknown quiz identifier.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrHackathonNotFound indicates an unknown hackathon identifier.
	ErrHackathonNotFound = errors.New("hackathon not found")
	// ErrUserNotFound indicates an unknown user identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on signup when the email is already registered.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUnauthorized is returned when no identity can be resolved for a request.
	ErrUnauthorized = errors.New("authentication required")
	// ErrInvalidInput is returned when required request fields are missing.
	ErrInvalidInput = errors.New("missing required fields")
)
