package process

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Spec describes process to spawn.
type Spec struct {
	Path string
	Args []string
	Env  []string
	Dir  string
}

func (s Spec) String() string {
	return strings.Join(append([]string{s.Path}, s.Args...), " ")
}

const (
	chunkSize = 32 * 1024

	// maxPendingLine caps unterminated line kept for completion checks,
	// only its tail is retained beyond that.
	maxPendingLine = 1024 * 1024
)

// runner spawns the process described by Spec. It implements the ifrit.Runner interface,
// closing ready channel once the completion policy is satisfied by the output.
//
// The process is started in its own process group, signals are delivered to the whole group.
type runner struct {
	spec   Spec
	policy CompletionPolicy
	args   *runArgs

	pid    int
	pidMu  sync.Mutex
	echoMu sync.Mutex
	done   chan struct{}
	stdout lockedBuffer
	stderr lockedBuffer
}

func newRunner(spec Spec, policy CompletionPolicy, args *runArgs) *runner {
	return &runner{
		spec:   spec,
		policy: policy,
		args:   args,
		done:   make(chan struct{}),
	}
}

// Run starts the process and blocks until it exits.
func (r *runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	defer close(r.done)

	var (
		cmd       = exec.Command(r.spec.Path, r.spec.Args...)
		readyOnce sync.Once
		wg        sync.WaitGroup
		markReady = func() {
			readyOnce.Do(func() { close(ready) })
		}
	)

	cmd.Env = append(os.Environ(), r.spec.Env...)
	cmd.Dir = r.spec.Dir
	setProcessGroup(cmd)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to attach to stdout")
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to attach to stderr")
	}

	if err = cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", r.spec.Path)
	}

	r.pidMu.Lock()
	r.pid = cmd.Process.Pid
	r.pidMu.Unlock()

	wg.Add(2)
	go r.scan(stdoutPipe, r.args.stdout, &r.stdout, markReady, &wg)
	go r.scan(stderrPipe, r.args.stderr, &r.stderr, markReady, &wg)

	exited := make(chan error, 1)
	go func() {
		// Pipes must be drained before Wait closes them.
		wg.Wait()
		exited <- cmd.Wait()
	}()

	for {
		select {
		case err := <-exited:
			return r.exitErr(err)
		case sig := <-signals:
			_ = signalGroup(cmd.Process, sig)
		}
	}
}

// scan reads raw output chunks, capturing and echoing them.
// Every completed line and the pending unterminated one are tested against the policy,
// so output flushed without trailing newline can settle it as well.
func (r *runner) scan(
	reader io.Reader,
	echo io.Writer,
	capture *lockedBuffer,
	markReady func(),
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	var (
		buf     = make([]byte, chunkSize)
		pending []byte
	)

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			chunk := buf[:n]

			_, _ = capture.Write(chunk)
			r.echo(echo, chunk)

			pending = append(pending, chunk...)

			var consumed bool
			for {
				idx := bytes.IndexByte(pending, '\n')
				if idx < 0 {
					break
				}

				r.check(pending[:idx], markReady)
				pending, consumed = pending[idx+1:], true
			}

			if len(pending) > 0 {
				r.check(pending, markReady)
			}

			if len(pending) > maxPendingLine {
				pending, consumed = pending[len(pending)-maxPendingLine:], true
			}

			if consumed {
				pending = append([]byte(nil), pending...)
			}
		}

		if err != nil {
			return
		}
	}
}

func (r *runner) check(line []byte, markReady func()) {
	if r.policy.completes(strings.TrimSuffix(string(line), "\r")) {
		markReady()
	}
}

// echo writes are serialized, the same writer may be used for stdout and stderr.
func (r *runner) echo(w io.Writer, chunk []byte) {
	if !r.args.stream || w == nil {
		return
	}

	r.echoMu.Lock()
	defer r.echoMu.Unlock()

	_, _ = w.Write(chunk)
}

func (r *runner) exitErr(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Path:   r.spec.Path,
			Code:   exitErr.ExitCode(),
			Stderr: r.stderr.Bytes(),
		}
	}

	return err
}

func (r *runner) processID() int {
	r.pidMu.Lock()
	defer r.pidMu.Unlock()

	return r.pid
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]byte(nil), b.buf.Bytes()...)
}
