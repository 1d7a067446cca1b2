package fabnboot

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks availability and versions of Fabric binaries",
	Long: `Checks availability and versions of Fabric binaries

Examples:
  # Check binaries found in $PATH:
  fabnboot check

  # Check binaries in custom location satisfy version constraint:
  fabnboot check --bin-path ./bin --constraint ">= 2.3"`,

	RunE: shared.WithHandleErrors(check),
}

func init() {
	checkCmd.Flags().String("constraint", "", "Version constraint binaries must satisfy, e.g. '>= 2.3'")
}

func check(cmd *cobra.Command, _ []string) error {
	var (
		logger  = term.NewLogger()
		options = []fabric.Option{fabric.WithLogger(logger.For("check"))}
		failed  int
	)

	constraint, err := cmd.Flags().GetString("constraint")
	if err != nil {
		return fmt.Errorf("%w: failed to parse 'constraint' parameter", term.ErrInvalidArgs)
	}

	for _, binary := range []fabric.Binary{
		fabric.OrdererBinary,
		fabric.CAServerBinary,
		fabric.CAClientBinary,
		fabric.ConfigtxgenBinary,
		fabric.OSNAdminBinary,
	} {
		logger.StreamLevel(func() (term.LogStreamLevel, string) {
			v, err := fabric.BinaryVersion(cmd.Context(), binary, options...)
			if err != nil {
				failed++
				return term.LogStreamError, fmt.Sprintf("%s: %v", binary, err)
			}

			if len(constraint) != 0 {
				if err = fabric.RequireVersion(cmd.Context(), binary, constraint, options...); err != nil {
					failed++
					return term.LogStreamWarning, err.Error()
				}
			}

			return term.LogStreamOk, fmt.Sprintf("%s %s", binary, v)
		}, fmt.Sprintf("Checking %s", binary))
	}

	if failed > 0 {
		return fmt.Errorf("%d of Fabric binaries are unavailable or incompatible", failed)
	}

	logger.Success("All Fabric binaries are available")

	return nil
}
