package fabric

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timoth-y/fabnboot/pkg/term"
)

func TestParseVersion(t *testing.T) {
	for output, expected := range map[string]string{
		"orderer:\n Version: 2.3.2\n Commit SHA: 0b5b2a9\n Go version: go1.14.12\n": "2.3.2",
		"fabric-ca-client:\n Version: v1.5.0\n":                                     "1.5.0",
		"2.4.1\n": "2.4.1",
	} {
		v, err := ParseVersion([]byte(output))
		require.NoError(t, err, output)
		assert.Equal(t, expected, v.String())
	}

	_, err := ParseVersion([]byte("unknown command"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, []string{"orderer", "version"}, versionCommand(OrdererBinary).Build())
	assert.Equal(t, []string{"configtxgen", "-version"}, versionCommand(ConfigtxgenBinary).Build())
	assert.Equal(t, []string{"osnadmin", "--version"}, versionCommand(OSNAdminBinary).Build())
}

func TestRequireVersion(t *testing.T) {
	dir, cleanup := sandbox(t)
	defer cleanup()

	writeBinary(t, filepath.Join(dir, "bin"), OrdererBinary, `printf 'orderer:\n Version: 2.3.2\n Commit SHA: 0b5b2a9\n'`)

	v, err := BinaryVersion(context.Background(), OrdererBinary, testOptions(dir)...)
	require.NoError(t, err)
	assert.Equal(t, "2.3.2", v.String())

	assert.NoError(t, RequireVersion(context.Background(), OrdererBinary, ">= 2.3", testOptions(dir)...))

	err = RequireVersion(context.Background(), OrdererBinary, ">= 2.4", testOptions(dir)...)
	assert.True(t, errors.Is(err, ErrIncompatibleVersion))

	err = RequireVersion(context.Background(), OrdererBinary, "newest", testOptions(dir)...)
	assert.True(t, errors.Is(err, term.ErrInvalidArgs))
}
