package fabric

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/args"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// command is the immutable core shared by every binary-specific builder.
// All modifying methods return updated copy.
type command struct {
	binary     Binary
	subcommand string
	flags      args.Map
	env        []string
	prefix     string
	policy     process.CompletionPolicy
	resolver   Resolver
}

func newCommand(binary Binary, subcommand string) command {
	return command{
		binary:     binary,
		subcommand: subcommand,
		flags:      args.New(),
		prefix:     "--",
	}
}

func (c command) withString(key, value string) command {
	if len(value) == 0 {
		return c
	}

	c.flags = c.flags.With(key, value)
	return c
}

func (c command) withInt(key string, value int) command {
	if value == 0 {
		return c
	}

	c.flags = c.flags.With(key, value)
	return c
}

func (c command) withBool(key string, value bool) command {
	if !value {
		return c
	}

	c.flags = c.flags.With(key, value)
	return c
}

func (c command) withList(key string, values []string) command {
	if len(values) == 0 {
		return c
	}

	c.flags = c.flags.With(key, values)
	return c
}

func (c command) withEnv(name, value string) command {
	if len(name) == 0 {
		return c
	}

	var env = make([]string, 0, len(c.env)+1)
	for _, kv := range c.env {
		if !strings.HasPrefix(kv, name+"=") {
			env = append(env, kv)
		}
	}

	c.env = append(env, fmt.Sprintf("%s=%s", name, value))
	return c
}

// Binary returns the executable name.
func (c command) Binary() Binary {
	return c.binary
}

// Args returns accumulated flags.
func (c command) Args() args.Map {
	return c.flags
}

// Env returns additional environment variables passed to the process.
func (c command) Env() []string {
	return append([]string(nil), c.env...)
}

// Build returns the full argument vector: binary name, subcommand and encoded flags.
func (c command) Build() []string {
	var argv = []string{string(c.binary)}

	argv = append(argv, strings.Fields(c.subcommand)...)

	return append(argv, args.Encode(c.flags, args.WithPrefix(c.prefix))...)
}

func (c command) execute(
	ctx context.Context,
	fallback process.CompletionPolicy,
	options ...process.Option,
) (*process.Handle, error) {
	var (
		resolve = c.resolver
		policy  = c.policy
	)

	if resolve == nil {
		resolve = DefaultResolver
	}

	if policy == nil {
		policy = fallback
	}

	path, err := resolve(c.binary)
	if err != nil {
		return nil, err
	}

	return process.Run(ctx, process.Spec{
		Path: path,
		Args: c.Build()[1:],
		Env:  c.Env(),
	}, policy, options...)
}

// applyFlags imports changed flags from `flags` which names are listed in `accepted`.
func (c command) applyFlags(flags *pflag.FlagSet, accepted []string) (command, error) {
	var (
		known      = make(map[string]bool, len(accepted))
		initErrors []error
	)

	for _, name := range accepted {
		known[name] = true
	}

	flags.Visit(func(flag *pflag.Flag) {
		if !known[flag.Name] {
			return
		}

		var (
			value interface{}
			err   error
		)

		switch flag.Value.Type() {
		case "bool":
			value, err = flags.GetBool(flag.Name)
		case "int":
			value, err = flags.GetInt(flag.Name)
		case "stringSlice":
			value, err = flags.GetStringSlice(flag.Name)
		case "stringArray":
			value, err = flags.GetStringArray(flag.Name)
		default:
			value = flag.Value.String()
		}

		if err != nil {
			initErrors = append(initErrors,
				fmt.Errorf("%w: failed to parse parameter '%s': %s", term.ErrInvalidArgs, flag.Name, err),
			)
			return
		}

		switch v := value.(type) {
		case bool:
			c = c.withBool(flag.Name, v)
		case int:
			c = c.withInt(flag.Name, v)
		case []string:
			c = c.withList(flag.Name, v)
		case string:
			c = c.withString(flag.Name, v)
		}
	})

	if len(initErrors) > 0 {
		return c, multipleErrors("invalid flags", initErrors)
	}

	return c, nil
}

func multipleErrors(prefix string, errs []error) error {
	var messages = make([]string, 0, len(errs))

	for i := range errs {
		messages = append(messages, errs[i].Error())
	}

	return fmt.Errorf("%w: %s: %s", term.ErrInvalidArgs, prefix, strings.Join(messages, "; "))
}

func dedupe(values []string) []string {
	var (
		seen = make(map[string]bool, len(values))
		out  = make([]string, 0, len(values))
	)

	for _, v := range values {
		v = strings.TrimSpace(v)
		if len(v) == 0 || seen[v] {
			continue
		}

		seen[v] = true
		out = append(out, v)
	}

	return out
}
