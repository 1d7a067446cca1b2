package term

import "io"

type (
	LoggerOption func(args *loggerArgs)

	loggerArgs struct {
		stdout io.Writer
		stderr io.Writer
		module string
		level  string

		interactive bool
	}
)

// WithStdout can be specified where to print user facing output.
// Default is local os.Stdout.
func WithStdout(stdout io.Writer) LoggerOption {
	return func(args *loggerArgs) {
		args.stdout = stdout
	}
}

// WithStderr can be specified where to write log records and error output.
// Default is local os.Stderr.
func WithStderr(stderr io.Writer) LoggerOption {
	return func(args *loggerArgs) {
		args.stderr = stderr
	}
}

// WithModule can be used to name the root logging context.
// Default is: fabnboot.
func WithModule(module string) LoggerOption {
	return func(args *loggerArgs) {
		args.module = module
	}
}

// WithLevel can be used to set minimal logging level (debug, info, warning, error).
// Default is taken from `logging` config key, falling back to info.
func WithLevel(level string) LoggerOption {
	return func(args *loggerArgs) {
		args.level = level
	}
}

// WithInteractive can be used to toggle spinner progress for streamed operations.
// Default is: true.
func WithInteractive(interactive bool) LoggerOption {
	return func(args *loggerArgs) {
		args.interactive = interactive
	}
}
