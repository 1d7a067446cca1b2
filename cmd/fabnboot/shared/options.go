package shared

import (
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// FabricOptions returns options for lifecycle operations based on global flags.
func FabricOptions(logger *term.Logger, options ...fabric.Option) []fabric.Option {
	return append([]fabric.Option{
		fabric.WithLogger(logger),
		fabric.WithProcessOptions(process.WithStream(!Quiet)),
	}, options...)
}

// NewLogger returns CLI logger, which shows spinner progress only when
// output of Fabric binaries isn't streamed to the terminal.
func NewLogger() *term.Logger {
	return term.NewLogger(term.WithInteractive(Quiet))
}
