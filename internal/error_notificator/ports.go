package error_notificator

import "context"

type Notificator interface {
	// Notify reports an upstream failure to the operator
	Notify(ctx context.Context, source string, err error, details string) error
}
