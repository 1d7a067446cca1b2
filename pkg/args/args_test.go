package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	m := New().
		With("csr.cn", "admin").
		With("debug", true).
		With("quiet", false).
		With("csr.hosts", []string{"localhost", "ca.org1"}).
		With("csr.keyrequest.size", 256)

	assert.Equal(t, []string{
		"--csr.cn", "admin",
		"--debug",
		"--csr.hosts", "localhost,ca.org1",
		"--csr.keyrequest.size", "256",
	}, Encode(m))
}

func TestEncodeKeepsInsertionOrder(t *testing.T) {
	m := New().With("b", "1").With("a", "2").With("c", "3").With("b", "4")

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, []string{"--b", "4", "--a", "2", "--c", "3"}, Encode(m))
}

func TestEncodeWithPrefix(t *testing.T) {
	m := New().With("profile", "SampleGenesis").With("channelID", "system")

	assert.Equal(t,
		[]string{"-profile", "SampleGenesis", "-channelID", "system"},
		Encode(m, WithPrefix("-")),
	)
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := New().With("url", "http://localhost:7054")
	next := base.With("caname", "ca-org1")

	assert.Equal(t, 1, base.Len())
	assert.False(t, base.Has("caname"))
	assert.Equal(t, 2, next.Len())
}

func TestWithCopiesSlices(t *testing.T) {
	hosts := []string{"a", "b"}
	m := New().With("csr.hosts", hosts)
	hosts[0] = "z"

	v, ok := m.Get("csr.hosts")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestDecodeRoundTripsPresence(t *testing.T) {
	m := New().
		With("enabled", true).
		With("disabled", false).
		With("names", []string{"x", "y"}).
		With("port", 7050)

	decoded := Decode(Encode(m))

	assert.True(t, decoded.Has("enabled"))
	assert.False(t, decoded.Has("disabled"))
	assert.Equal(t, []string{"enabled", "names", "port"}, decoded.Keys())

	names, _ := decoded.Get("names")
	assert.Equal(t, "x,y", names)

	enabled, _ := decoded.Get("enabled")
	assert.Equal(t, true, enabled)
}

func TestEqual(t *testing.T) {
	a := New().With("x", 1).With("y", []string{"a"})
	b := New().With("x", "1").With("y", []string{"a"})
	c := New().With("y", []string{"a"}).With("x", 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, New().Equal(Map{}))
}
