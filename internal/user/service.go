package user

import (
	"context"
	"fmt"
)

type service struct {
	infra Infra
}

func NewService(infra Infra) Service {
	return &service{infra: infra}
}

func (s *service) Login(ctx context.Context, username, password string) error {
	stored, ok, err := s.infra.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if !ok || stored != password {
		return ErrInvalidCredentials
	}
	return nil
}

// Register does not log the user in.
func (s *service) Register(ctx context.Context, username, password, confirmPassword string) error {
	if username == "" || password == "" {
		return ErrEmptyField
	}

	exists, err := s.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateUser
	}

	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	// Create re-checks under lock, a concurrent registration loses with ErrDuplicateUser
	return s.infra.Create(ctx, username, password)
}

func (s *service) Exists(ctx context.Context, username string) (bool, error) {
	_, ok, err := s.infra.GetPassword(ctx, username)
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return ok, nil
}
