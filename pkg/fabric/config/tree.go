package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

// Tree is a nested mirror of YAML configuration document.
type Tree map[string]interface{}

// ParseTree decodes YAML document into Tree.
func ParseTree(data []byte) (Tree, error) {
	var tree = Tree{}

	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return normalize(tree).(Tree), nil
}

// FromPatch converts typed patch structure into Tree holding only its defined fields.
func FromPatch(patch interface{}) (Tree, error) {
	data, err := yaml.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	return ParseTree(data)
}

// Marshal encodes Tree as YAML document.
func (t Tree) Marshal() ([]byte, error) {
	return yaml.Marshal(map[string]interface{}(t))
}

// Clone returns deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return Tree{}
	}

	return clone(t).(Tree)
}

// Merge returns copy of the tree with every leaf of `patch` written over.
// Nested maps are merged recursively, so siblings absent from `patch` are preserved.
// Lists are treated as leaves and replaced as a whole.
func (t Tree) Merge(patch Tree) Tree {
	var merged = t.Clone()

	mergeInto(merged, patch)

	return merged
}

// Set returns copy of the tree with leaf at dot separated `path` set to `value`.
// Missing intermediate groups are created.
func (t Tree) Set(path string, value interface{}) Tree {
	var (
		keys   = strings.Split(path, ".")
		merged = t.Clone()
		node   = merged
	)

	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key].(Tree)
		if !ok {
			next = Tree{}
			node[key] = next
		}
		node = next
	}

	node[keys[len(keys)-1]] = normalize(clone(value))

	return merged
}

// Get returns value at dot separated `path`.
func (t Tree) Get(path string) (interface{}, bool) {
	var node interface{} = t

	for _, key := range strings.Split(path, ".") {
		group, ok := node.(Tree)
		if !ok {
			return nil, false
		}

		if node, ok = group[key]; !ok {
			return nil, false
		}
	}

	return node, true
}

// Diff returns sorted dot separated paths of leaves which differ between trees.
func (t Tree) Diff(other Tree) []string {
	var paths []string

	diff("", t, other, &paths)
	sort.Strings(paths)

	return paths
}

func mergeInto(dst, src Tree) {
	for key, value := range src {
		if patch, ok := value.(Tree); ok {
			if group, ok := dst[key].(Tree); ok {
				mergeInto(group, patch)
				continue
			}
		}

		dst[key] = clone(value)
	}
}

func diff(prefix string, a, b Tree, paths *[]string) {
	var keys = make(map[string]bool, len(a)+len(b))

	for key := range a {
		keys[key] = true
	}

	for key := range b {
		keys[key] = true
	}

	for key := range keys {
		var (
			path     = key
			av, inA  = a[key]
			bv, inB  = b[key]
			ag, aMap = av.(Tree)
			bg, bMap = bv.(Tree)
		)

		if len(prefix) != 0 {
			path = prefix + "." + key
		}

		switch {
		case aMap && bMap:
			diff(path, ag, bg, paths)
		case inA != inB, !reflect.DeepEqual(av, bv):
			*paths = append(*paths, path)
		}
	}
}

// normalize converts nested generic maps into Tree values
// and scalars into the types YAML decoding produces.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case float32:
		return float64(v)
	case []string:
		var list = make([]interface{}, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return list
	case Tree:
		for key := range v {
			v[key] = normalize(v[key])
		}
		return v
	case map[string]interface{}:
		return normalize(Tree(v))
	case []interface{}:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	default:
		return value
	}
}

func clone(value interface{}) interface{} {
	switch v := value.(type) {
	case Tree:
		var c = make(Tree, len(v))
		for key := range v {
			c[key] = clone(v[key])
		}
		return c
	case map[string]interface{}:
		return clone(Tree(v))
	case []interface{}:
		var c = make([]interface{}, len(v))
		for i := range v {
			c[i] = clone(v[i])
		}
		return c
	case []string:
		return append([]string(nil), v...)
	default:
		return value
	}
}
