package shared

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timoth-y/fabnboot/pkg/term"
)

func TestParseOverride(t *testing.T) {
	for assignment, expected := range map[string]Override{
		"General.ListenPort=7050":         {Path: "General.ListenPort", Value: float64(7050)},
		"General.TLS.Enabled=true":        {Path: "General.TLS.Enabled", Value: true},
		"General.LocalMSPID=OrdererMSP":   {Path: "General.LocalMSPID", Value: "OrdererMSP"},
		"csr.hosts=[localhost, ca.org1]":  {Path: "csr.hosts", Value: []interface{}{"localhost", "ca.org1"}},
		" Kafka.Retry.ShortInterval =5s":  {Path: "Kafka.Retry.ShortInterval", Value: "5s"},
		"Admin.TLS.Certificate=":          {Path: "Admin.TLS.Certificate", Value: nil},
		"General.ListenAddress=0.0.0.0=x": {Path: "General.ListenAddress", Value: "0.0.0.0=x"},
	} {
		override, err := ParseOverride(assignment)
		require.NoError(t, err, assignment)
		assert.Equal(t, expected, override, assignment)
	}
}

func TestParseOverrideMalformed(t *testing.T) {
	for _, assignment := range []string{
		"General.ListenPort",
		"=7050",
		"csr.hosts=[localhost",
	} {
		_, err := ParseOverride(assignment)
		assert.True(t, errors.Is(err, term.ErrInvalidArgs), assignment)
	}
}

func TestParseOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("issue", pflag.ContinueOnError)
	flags.StringArray("set", nil, "")

	require.NoError(t, flags.Parse([]string{
		"--set", "General.ListenPort=7150",
		"--set", "General.LocalMSPID=OrdererMSP",
	}))

	overrides, err := ParseOverrides(flags)
	require.NoError(t, err)
	assert.Equal(t, []Override{
		{Path: "General.ListenPort", Value: float64(7150)},
		{Path: "General.LocalMSPID", Value: "OrdererMSP"},
	}, overrides)

	_, err = ParseOverrides(pflag.NewFlagSet("empty", pflag.ContinueOnError))
	assert.True(t, errors.Is(err, term.ErrInvalidArgs))
}
