package error_notificator

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

// Infra writes notifications to the service log.
type Infra struct {
	log     *logger.ZapLogger
	service string
}

func NewInfra(log *logger.ZapLogger, service string) *Infra {
	return &Infra{log: log, service: service}
}

func (i *Infra) Notify(ctx context.Context, source string, err error, details string) error {
	i.log.Log(logger.LogEntry{
		Level:   "error",
		Message: fmt.Sprintf("[%s] %s", source, details),
		Error:   err,
		Service: i.service,
	})
	return nil
}
