package shared

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// ErrHandled is returned by commands which failure has already been reported to the user.
var ErrHandled = errors.New("command failed")

// WithHandleErrors wraps cobra.Command with error handling middleware.
func WithHandleErrors(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}

		if errors.Is(err, term.ErrInvalidArgs) {
			cmd.PrintErrln(viper.GetString("cli.error_emoji"), "Error:", err)
			_ = cmd.Usage()
			return ErrHandled
		}

		cmd.PrintErrln(viper.GetString("cli.error_emoji"), "Error:", err)

		// Output wasn't streamed in quiet mode, offer to view what has been captured.
		var exitErr *process.ExitError
		if Quiet && errors.As(err, &exitErr) && len(exitErr.Stderr) != 0 {
			_ = term.WrapWithStderrViewPrompt(err, bytes.NewReader(exitErr.Stderr), false)
		}

		return ErrHandled
	}
}
