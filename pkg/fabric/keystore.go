package fabric

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultKeyName is the canonical name of enrolled identity private key.
const DefaultKeyName = "priv_sk"

// SoftResult reports outcome of best-effort step, which failure doesn't fail the operation.
type SoftResult struct {
	Step string
	Err  error
}

// OK reports whether the step succeeded.
func (r SoftResult) OK() bool {
	return r.Err == nil
}

func (r SoftResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Step, r.Err)
	}

	return fmt.Sprintf("%s: ok", r.Step)
}

// RenameKey renames single private key file in `<mspDir>/keystore` to `name`.
//
// fabric-ca-client stores enrolled key under randomly generated name, which makes
// it impossible to reference from static configuration. Keystore with no files
// or more than one file is reported as failure, since the key to rename is ambiguous.
func RenameKey(mspDir, name string) SoftResult {
	var (
		result   = SoftResult{Step: "rename key"}
		keystore = filepath.Join(mspDir, "keystore")
		keys     []string
	)

	if len(name) == 0 {
		name = DefaultKeyName
	}

	entries, err := os.ReadDir(keystore)
	if err != nil {
		result.Err = errors.Wrapf(err, "failed to read keystore %s", keystore)
		return result
	}

	for _, entry := range entries {
		if entry.Type().IsRegular() {
			keys = append(keys, entry.Name())
		}
	}

	if len(keys) != 1 {
		result.Err = fmt.Errorf("expected exactly one key in %s, found %d", keystore, len(keys))
		return result
	}

	if keys[0] == name {
		return result
	}

	if err = os.Rename(filepath.Join(keystore, keys[0]), filepath.Join(keystore, name)); err != nil {
		result.Err = errors.Wrapf(err, "failed to rename key %s", keys[0])
	}

	return result
}

// RenameKey renames enrolled private key in client MSP directory to `name`.
func (c CAClient) RenameKey(name string) SoftResult {
	return RenameKey(c.MSPDir(), name)
}
