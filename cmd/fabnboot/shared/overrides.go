package shared

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/term"
	"sigs.k8s.io/yaml"
)

// Override is a single configuration leaf assignment passed with `--set` flag.
type Override struct {
	Path  string
	Value interface{}
}

// ParseOverrides parses `--set path=value` flags, decoding values as YAML scalars or lists.
func ParseOverrides(flags *pflag.FlagSet) ([]Override, error) {
	assignments, err := flags.GetStringArray("set")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse 'set' parameter: %s", term.ErrInvalidArgs, err)
	}

	var overrides = make([]Override, 0, len(assignments))

	for _, assignment := range assignments {
		override, err := ParseOverride(assignment)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, override)
	}

	return overrides, nil
}

// ParseOverride parses single `path=value` assignment.
func ParseOverride(assignment string) (Override, error) {
	var (
		parts = strings.SplitN(assignment, "=", 2)
		value interface{}
	)

	if len(parts) != 2 || len(strings.TrimSpace(parts[0])) == 0 {
		return Override{}, fmt.Errorf("%w: '%s' must be in form of 'path=value'", term.ErrInvalidArgs, assignment)
	}

	if err := yaml.Unmarshal([]byte(parts[1]), &value); err != nil {
		return Override{}, fmt.Errorf("%w: invalid value of '%s': %s", term.ErrInvalidArgs, parts[0], err)
	}

	return Override{Path: strings.TrimSpace(parts[0]), Value: value}, nil
}
