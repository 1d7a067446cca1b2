package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFor(t *testing.T) {
	var stderr bytes.Buffer

	logger := NewLogger(WithStderr(&stderr), WithLevel("debug"), WithModule("test"))
	child := logger.For("orderer")

	assert.Equal(t, "test.orderer", child.Module())

	child.Infof("listening on %d", 7050)
	assert.Contains(t, stderr.String(), "[test.orderer]")
	assert.Contains(t, stderr.String(), "listening on 7050")
}

func TestLoggerLevelFilter(t *testing.T) {
	var stderr bytes.Buffer

	logger := NewLogger(WithStderr(&stderr), WithLevel("warning"))
	logger.Debugf("hidden")
	logger.Infof("hidden too")
	logger.Warnf("shown")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
}

func TestLoggerErrorSkipsNil(t *testing.T) {
	var stderr bytes.Buffer

	logger := NewLogger(WithStderr(&stderr))
	logger.Error(nil, "nothing")
	assert.Empty(t, stderr.String())

	logger.Error(errors.New("boom"), "rename failed")
	assert.Contains(t, stderr.String(), "rename failed: boom")
}

func TestSuccessWritesToStdout(t *testing.T) {
	var stdout bytes.Buffer

	NewLogger(WithStdout(&stdout)).Successf("block %s written", "genesis.block")
	assert.Contains(t, stdout.String(), "block genesis.block written")
}

func TestErrFromStderr(t *testing.T) {
	err := ErrFromStderr([]byte("2021 INFO starting\nError: failed to find profile\n\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCmdFailed))
	assert.True(t, strings.HasPrefix(err.Error(), "failed to find profile"))

	assert.NoError(t, ErrFromStderr(nil))
}

func TestStreamNonInteractive(t *testing.T) {
	var stdout, stderr bytes.Buffer

	logger := NewLogger(WithStdout(&stdout), WithStderr(&stderr), WithInteractive(false))

	require.NoError(t, logger.Stream(func() error { return nil }, "Generating block", "Block generated"))
	assert.Contains(t, stderr.String(), "Generating block...")
	assert.Contains(t, stdout.String(), "Block generated")

	err := logger.Stream(func() error { return errors.New("no profile") }, "Generating block", "unreachable")
	assert.EqualError(t, err, "no profile")
	assert.Contains(t, stderr.String(), "no profile")
	assert.NotContains(t, stdout.String(), "unreachable")
}

func TestErrFromStderrStripsLogPrefix(t *testing.T) {
	err := ErrFromStderr([]byte("2021-06-01 12:00:00.000 UTC [main] main -> FATA 001 Failed to parse config\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "001 Failed to parse config"))

	err = ErrFromStderr([]byte("just a line"))
	assert.True(t, strings.HasPrefix(err.Error(), "just a line"))
}

func TestWrapWithStderrViewPrompt(t *testing.T) {
	defer func(original func(string) bool) { confirm = original }(confirm)

	var cause = errors.New("exit status 1")

	assert.Nil(t, WrapWithStderrViewPrompt(nil, strings.NewReader("log"), false))
	assert.Equal(t, cause, WrapWithStderrViewPrompt(cause, nil, false))
	assert.Equal(t, cause, WrapWithStderrViewPrompt(cause, strings.NewReader(""), false))

	confirm = func(string) bool { return false }
	assert.Nil(t, WrapWithStderrViewPrompt(cause, strings.NewReader("log"), false))

	var out bytes.Buffer
	confirm = func(string) bool { return true }
	assert.True(t, PromptStderrView(strings.NewReader("full log"), &out))
	assert.Equal(t, "full log", out.String())
}
