package fabric

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// ErrIncompatibleVersion is returned when binary version doesn't satisfy required constraint.
var ErrIncompatibleVersion = errors.New("incompatible binary version")

var versionPattern = regexp.MustCompile(`Version:\s*v?(\S+)`)

// versionCommand returns invocation printing version information of `binary`.
func versionCommand(binary Binary) command {
	switch binary {
	case ConfigtxgenBinary:
		var cmd = newCommand(binary, "")
		cmd.prefix = "-"
		return cmd.withBool("version", true)
	case OSNAdminBinary:
		return newCommand(binary, "").withBool("version", true)
	default:
		return newCommand(binary, "version")
	}
}

// BinaryVersion runs `binary` to print its version and parses it.
func BinaryVersion(ctx context.Context, binary Binary, options ...Option) (*version.Version, error) {
	var (
		args = applyOptions("version", options)
		cmd  = versionCommand(binary)
	)

	cmd.resolver = args.resolver

	handle, err := cmd.execute(ctx, process.ExitCode(),
		append(args.runOptions(), process.WithStream(false))...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s version: %w", binary, err)
	}

	return ParseVersion(handle.Output())
}

// ParseVersion extracts semantic version from Fabric binary version output.
func ParseVersion(output []byte) (*version.Version, error) {
	var raw string

	if match := versionPattern.FindSubmatch(output); match != nil {
		raw = string(match[1])
	} else {
		raw = strings.TrimPrefix(term.GetLastLine(bytes.NewReader(output)), "v")
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version from '%s': %w", raw, err)
	}

	return v, nil
}

// RequireVersion checks that `binary` version satisfies `constraint`, e.g. ">= 2.3".
func RequireVersion(ctx context.Context, binary Binary, constraint string, options ...Option) error {
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("%w: invalid version constraint '%s': %v", term.ErrInvalidArgs, constraint, err)
	}

	v, err := BinaryVersion(ctx, binary, options...)
	if err != nil {
		return err
	}

	if !constraints.Check(v) {
		return fmt.Errorf("%w: %s %s doesn't satisfy '%s'", ErrIncompatibleVersion, binary, v, constraint)
	}

	return nil
}
