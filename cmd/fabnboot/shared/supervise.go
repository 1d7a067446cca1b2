package shared

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

const stopTimeout = 10 * time.Second

// Supervise keeps service `handle` running in the foreground
// until it exits by itself or `ctx` is cancelled, in which case it is stopped.
func Supervise(ctx context.Context, handle *process.Handle, logger *term.Logger) error {
	select {
	case err := <-handle.Wait():
		if err != nil {
			return fmt.Errorf("%s terminated: %w", handle.Spec().Path, err)
		}

		logger.Warnf("%s exited", handle.Spec().Path)
		return nil
	case <-ctx.Done():
		logger.Infof("Stopping %s (pid %d)", handle.Spec().Path, handle.Pid())

		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()

		_ = handle.Stop(stopCtx)

		return nil
	}
}

// BootContext returns context limiting time given to a service to become ready,
// configured with `process.boot_timeout` key.
func BootContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := viper.GetDuration("process.boot_timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}

	return context.WithCancel(ctx)
}
