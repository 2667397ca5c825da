package user

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyField         = errors.New("username and password cannot be empty")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Infra — registry of username -> password
type Infra interface {
	GetPassword(ctx context.Context, username string) (password string, ok bool, err error)
	Create(ctx context.Context, username, password string) error
}

// Service — login / registration
type Service interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password, confirmPassword string) error
	Exists(ctx context.Context, username string) (bool, error)
}
