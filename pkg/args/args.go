package args

import (
	"fmt"
	"strconv"
	"strings"
)

// Map is an ordered mapping from flag name to flag value,
// destined to be encoded into command line arguments.
//
// Supported values are string, bool, int, int64, float64 and []string.
// Map is a value type: With returns a modified copy and never touches the receiver.
type Map struct {
	keys   []string
	values map[string]interface{}
}

// New constructs an empty Map.
func New() Map {
	return Map{values: make(map[string]interface{})}
}

// With returns a copy of the map with `key` set to `value`.
// Re-setting an existing key keeps its original position.
func (m Map) With(key string, value interface{}) Map {
	var next = Map{
		keys:   make([]string, len(m.keys), len(m.keys)+1),
		values: make(map[string]interface{}, len(m.values)+1),
	}

	copy(next.keys, m.keys)
	for k, v := range m.values {
		next.values[k] = v
	}

	if _, ok := next.values[key]; !ok {
		next.keys = append(next.keys, key)
	}

	if slice, ok := value.([]string); ok {
		value = append([]string(nil), slice...)
	}

	next.values[key] = value

	return next
}

// Get returns value stored under `key`.
func (m Map) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has checks whether `key` was explicitly set.
func (m Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns flag names in insertion order.
func (m Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns number of entries.
func (m Map) Len() int {
	return len(m.keys)
}

// Equal reports whether both maps hold the same entries in the same order.
func (m Map) Equal(other Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}

		if stringify(m.values[key]) != stringify(other.values[key]) {
			return false
		}
	}

	return true
}

type (
	// Option allows configuring encoding.
	Option func(*encodeArgs)

	encodeArgs struct {
		prefix string
	}
)

// WithPrefix can be used to specify flag prefix.
// Binaries built on the standard Go flag package accept single dash flags.
//
// Default is: "--".
func WithPrefix(prefix string) Option {
	return func(args *encodeArgs) {
		args.prefix = prefix
	}
}

// Encode turns `m` into POSIX-style argument vector.
//
// Boolean true is encoded as presence-only flag, false is omitted,
// string slices are comma-joined into a single argument.
func Encode(m Map, options ...Option) []string {
	var (
		args = &encodeArgs{prefix: "--"}
		out  = make([]string, 0, m.Len()*2)
	)

	for i := range options {
		options[i](args)
	}

	for _, key := range m.keys {
		var flag = args.prefix + key

		switch v := m.values[key].(type) {
		case bool:
			if v {
				out = append(out, flag)
			}
		case []string:
			out = append(out, flag, strings.Join(v, ","))
		default:
			out = append(out, flag, stringify(v))
		}
	}

	return out
}

// Decode parses argument vector produced by Encode back into the Map.
//
// Values are restored as strings, except presence-only flags which are restored as true.
// Tokens not starting with `prefix` and not following a flag are skipped.
func Decode(argv []string, options ...Option) Map {
	var (
		args = &encodeArgs{prefix: "--"}
		m    = New()
	)

	for i := range options {
		options[i](args)
	}

	for i := 0; i < len(argv); i++ {
		if !strings.HasPrefix(argv[i], args.prefix) {
			continue
		}

		key := strings.TrimPrefix(argv[i], args.prefix)

		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], args.prefix) {
			m = m.With(key, argv[i+1])
			i++
			continue
		}

		m = m.With(key, true)
	}

	return m
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}
