package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// document is the immutable core of configuration builders:
// base tree merged with patches and first error occurred while converting them.
type document struct {
	filename string
	tree     Tree
	err      error
}

func load(filename string, template []byte) (document, error) {
	tree, err := ParseTree(template)
	if err != nil {
		return document{}, errors.Wrapf(err, "failed to load %s template", filename)
	}

	return document{filename: filename, tree: tree}, nil
}

func loadFile(filename, path string) (document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return document{}, errors.Wrapf(err, "failed to read %s", path)
	}

	return load(filename, data)
}

func (d document) merge(group string, patch interface{}) document {
	if d.err != nil || patch == nil {
		return d
	}

	tree, err := FromPatch(patch)
	if err != nil {
		d.err = errors.Wrapf(err, "invalid %s patch", group)
		return d
	}

	// Nil patch pointer encodes as null and yields empty tree.
	if len(tree) == 0 {
		return d
	}

	d.tree = d.tree.Merge(Tree{group: tree})

	return d
}

func (d document) set(path string, value interface{}) document {
	if d.err != nil {
		return d
	}

	d.tree = d.tree.Set(path, value)

	return d
}

// save writes the document to `path`, which is treated as directory unless it ends with `.yaml`.
func (d document) save(path string) (string, error) {
	if d.err != nil {
		return "", d.err
	}

	if !strings.HasSuffix(path, ".yaml") {
		path = filepath.Join(path, d.filename)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory for %s", path)
	}

	data, err := d.tree.Marshal()
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode %s", d.filename)
	}

	if err = ioutil.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	return path, nil
}
