package process

import (
	"io"
	"os"
	"time"

	"github.com/timoth-y/fabnboot/pkg/term"
)

type (
	// Option allows passing options for process execution.
	Option func(*runArgs)

	runArgs struct {
		stdout  io.Writer
		stderr  io.Writer
		stream  bool
		timeout time.Duration
		logger  *term.Logger
	}
)

// WithStream can be used to echo process output to stdout and stderr writers.
// Default is true.
func WithStream(stream bool) Option {
	return func(args *runArgs) {
		args.stream = stream
	}
}

// WithStdout can be specified where to stream process output.
// Default is local os.Stdout.
func WithStdout(stdout io.Writer) Option {
	return func(args *runArgs) {
		args.stdout = stdout
	}
}

// WithStderr can be specified where to stream process error output.
// Default is local os.Stderr.
func WithStderr(stderr io.Writer) Option {
	return func(args *runArgs) {
		args.stderr = stderr
	}
}

// WithTimeout can be used to limit time given to process to settle.
// Process is killed once it's exceeded. Zero means no limit apart from the passed context.
func WithTimeout(timeout time.Duration) Option {
	return func(args *runArgs) {
		args.timeout = timeout
	}
}

// WithLogger can be used to pass custom logger for execution records.
func WithLogger(logger *term.Logger) Option {
	return func(args *runArgs) {
		args.logger = logger
	}
}

func defaultArgs() *runArgs {
	return &runArgs{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stream: true,
	}
}
