package model

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given identity.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when a task lookup or mutation matches no row.
	ErrTaskNotFound = errors.New("task not found")
	// ErrLoginTaken is returned when registration uses an already occupied login.
	ErrLoginTaken = errors.New("login already taken")
)
