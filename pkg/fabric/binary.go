package fabric

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"
)

// Binary is the name of Fabric executable.
type Binary string

const (
	OrdererBinary     Binary = "orderer"
	CAClientBinary    Binary = "fabric-ca-client"
	CAServerBinary    Binary = "fabric-ca-server"
	ConfigtxgenBinary Binary = "configtxgen"
	OSNAdminBinary    Binary = "osnadmin"
)

// ErrBinaryNotFound is returned when Fabric executable can't be located.
var ErrBinaryNotFound = errors.New("fabric binary not found")

// Resolver locates executable path of the given Binary.
type Resolver func(Binary) (string, error)

// DefaultResolver looks up `fabric.bin_path` config directory when it's set,
// falling back to the directories named by the PATH environment variable.
func DefaultResolver(binary Binary) (string, error) {
	if dir := viper.GetString("fabric.bin_path"); len(dir) != 0 {
		return DirResolver(dir)(binary)
	}

	path, err := exec.LookPath(string(binary))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBinaryNotFound, binary, err)
	}

	return path, nil
}

// DirResolver resolves binaries located in `dir`.
func DirResolver(dir string) Resolver {
	return func(binary Binary) (string, error) {
		var path = filepath.Join(dir, string(binary))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s is missing in %s", ErrBinaryNotFound, binary, dir)
		}

		return path, nil
	}
}
