package error_notificator

import (
	"context"
	"errors"
)

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

// Notify ignores cancelled requests, the user just left.
func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return s.infra.Notify(ctx, source, err, details)
}
