package fabric

import (
	"time"

	"github.com/spf13/viper"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

type (
	// Option allows passing options for lifecycle operations.
	Option func(*opArgs)

	opArgs struct {
		logger         *term.Logger
		resolver       Resolver
		timeout        time.Duration
		keyName        string
		processOptions []process.Option
	}
)

// WithLogger can be used to pass custom logger.
// Default is new term.Logger tagged with `fabric` context.
func WithLogger(logger *term.Logger) Option {
	return func(args *opArgs) {
		args.logger = logger
	}
}

// WithResolver can be used to specify where Fabric binaries are located.
// It takes precedence over resolver set on the builder.
// Default is DefaultResolver.
func WithResolver(resolver Resolver) Option {
	return func(args *opArgs) {
		args.resolver = resolver
	}
}

// WithTimeout can be used to limit time given to Fabric binary to settle.
//
// Default is taken from `process.timeout` config key, zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(args *opArgs) {
		args.timeout = timeout
	}
}

// WithKeyName can be used to specify name enrolled private key is renamed to.
// Default is: priv_sk.
func WithKeyName(name string) Option {
	return func(args *opArgs) {
		args.keyName = name
	}
}

// WithProcessOptions passes additional options to the process execution.
func WithProcessOptions(options ...process.Option) Option {
	return func(args *opArgs) {
		args.processOptions = append(args.processOptions, options...)
	}
}

func applyOptions(context string, options []Option) *opArgs {
	var args = &opArgs{
		timeout: viper.GetDuration("process.timeout"),
		keyName: DefaultKeyName,
	}

	for i := range options {
		options[i](args)
	}

	if args.logger == nil {
		args.logger = term.NewLogger().For("fabric")
	}

	args.logger = args.logger.For(context)

	return args
}

func (a *opArgs) runOptions() []process.Option {
	var options = []process.Option{
		process.WithTimeout(a.timeout),
		process.WithLogger(a.logger),
	}

	return append(options, a.processOptions...)
}
