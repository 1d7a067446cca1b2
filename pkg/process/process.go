package process

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/tedsuo/ifrit"
)

// Run spawns process described by `spec` and blocks until `policy` settles it.
//
// On success the returned Handle refers to either an exited process (ExitCode policy,
// or any process which terminated cleanly) or a still running one (LogPattern policy).
// Caller owns running process from then on and is responsible for stopping it.
//
// Failures are reported as:
// spawn error, *ExitError for non-zero exit code, ErrPrematureExit,
// *TimeoutError when context deadline or WithTimeout exceeded.
// On timeout or cancellation the process is killed before returning.
func Run(ctx context.Context, spec Spec, policy CompletionPolicy, options ...Option) (*Handle, error) {
	var args = defaultArgs()

	for i := range options {
		options[i](args)
	}

	if args.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, args.timeout)
		defer cancel()
	}

	if args.logger != nil {
		args.logger.Debugf("Starting '%s' with %s completion policy", spec, policy)
	}

	var (
		r      = newRunner(spec, policy, args)
		proc   = ifrit.Background(r)
		handle = &Handle{spec: spec, process: proc, runner: r}
	)

	select {
	case <-proc.Ready():
		return handle, nil
	case err := <-proc.Wait():
		// Completing line might've been observed right before the exit.
		select {
		case <-proc.Ready():
			return handle, nil
		default:
		}

		if err = policy.exited(err); err != nil {
			return nil, err
		}

		return handle, nil
	case <-ctx.Done():
		proc.Signal(os.Kill)
		<-proc.Wait()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Path: spec.Path, Timeout: args.timeout}
		}

		return nil, ctx.Err()
	}
}

// Handle refers to a process settled by Run.
type Handle struct {
	spec     Spec
	process  ifrit.Process
	runner   *runner
	stopOnce sync.Once
}

// Spec returns description of the spawned process.
func (h *Handle) Spec() Spec {
	return h.spec
}

// Pid returns OS process identifier.
func (h *Handle) Pid() int {
	return h.runner.processID()
}

// Output returns process stdout captured so far.
func (h *Handle) Output() []byte {
	return h.runner.stdout.Bytes()
}

// ErrOutput returns process stderr captured so far.
func (h *Handle) ErrOutput() []byte {
	return h.runner.stderr.Bytes()
}

// Exited reports whether the process has already terminated.
func (h *Handle) Exited() bool {
	select {
	case <-h.runner.done:
		return true
	default:
		return false
	}
}

// Signal sends `sig` to the process.
func (h *Handle) Signal(sig os.Signal) {
	h.process.Signal(sig)
}

// Wait returns channel receiving process exit status.
func (h *Handle) Wait() <-chan error {
	return h.process.Wait()
}

// Stop interrupts the process and waits for it to exit.
// The process is killed if it's still running when `ctx` is done.
func (h *Handle) Stop(ctx context.Context) error {
	var err error

	h.stopOnce.Do(func() {
		h.process.Signal(os.Interrupt)

		select {
		case err = <-h.process.Wait():
		case <-ctx.Done():
			h.process.Signal(os.Kill)
			err = <-h.process.Wait()
		}
	})

	return err
}
