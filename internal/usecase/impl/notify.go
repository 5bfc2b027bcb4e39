package impl

import (
	"context"
	"log/slog"
	"sync"

	"eats/internal/domain/lifecycle"
	"eats/internal/domain/service"
)

// verificationDispatcher sends verification codes without blocking the caller.
// Failures are logged and never reach the account operation that triggered them.
type verificationDispatcher struct {
	notifier service.Notifier
	pending  sync.WaitGroup
}

func (d *verificationDispatcher) dispatch(ctx context.Context, logger *slog.Logger, email, code string) {
	detached := context.WithoutCancel(ctx)

	d.pending.Add(1)
	go func() {
		defer d.pending.Done()

		sendCtx, cancel := context.WithTimeout(detached, lifecycle.NotifyTimeout)
		defer cancel()

		if err := d.notifier.SendVerificationEmail(sendCtx, email, code); err != nil {
			logger.WarnContext(sendCtx, "Failed to send verification email",
				slog.String("email", email),
				slog.Any("error", err),
			)
		}
	}()
}

// wait blocks until every dispatched notification has finished.
func (d *verificationDispatcher) wait() {
	d.pending.Wait()
}
