package fabric

import (
	"context"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/process"
)

var configtxgenFlags = []string{
	"profile", "channelID", "configPath",
	"outputBlock", "outputCreateChannelTx", "channelCreateTxBaseProfile", "outputAnchorPeersUpdate",
	"asOrg", "inspectBlock", "inspectChannelCreateTx", "printOrg",
}

// Configtxgen builds configtxgen invocations.
// Configtxgen has no subcommands and takes single dash flags.
type Configtxgen struct {
	command
}

func NewConfigtxgen() Configtxgen {
	var c = newCommand(ConfigtxgenBinary, "")
	c.prefix = "-"

	return Configtxgen{command: c}
}

func (c Configtxgen) SetResolver(resolver Resolver) Configtxgen {
	if resolver != nil {
		c.resolver = resolver
	}
	return c
}

func (c Configtxgen) SetCompletionPolicy(policy process.CompletionPolicy) Configtxgen {
	if policy != nil {
		c.policy = policy
	}
	return c
}

// SetProfile sets configtx.yaml profile to use for generation.
func (c Configtxgen) SetProfile(profile string) Configtxgen {
	c.command = c.withString("profile", profile)
	return c
}

func (c Configtxgen) SetChannelID(id string) Configtxgen {
	c.command = c.withString("channelID", id)
	return c
}

// SetConfigPath sets directory containing configtx.yaml.
func (c Configtxgen) SetConfigPath(path string) Configtxgen {
	c.command = c.withString("configPath", path)
	return c
}

func (c Configtxgen) SetOutputBlock(path string) Configtxgen {
	c.command = c.withString("outputBlock", path)
	return c
}

func (c Configtxgen) SetOutputCreateChannelTx(path string) Configtxgen {
	c.command = c.withString("outputCreateChannelTx", path)
	return c
}

func (c Configtxgen) SetChannelCreateTxBaseProfile(profile string) Configtxgen {
	c.command = c.withString("channelCreateTxBaseProfile", profile)
	return c
}

func (c Configtxgen) SetOutputAnchorPeersUpdate(path string) Configtxgen {
	c.command = c.withString("outputAnchorPeersUpdate", path)
	return c
}

func (c Configtxgen) SetAsOrg(org string) Configtxgen {
	c.command = c.withString("asOrg", org)
	return c
}

func (c Configtxgen) SetInspectBlock(path string) Configtxgen {
	c.command = c.withString("inspectBlock", path)
	return c
}

func (c Configtxgen) SetInspectChannelCreateTx(path string) Configtxgen {
	c.command = c.withString("inspectChannelCreateTx", path)
	return c
}

func (c Configtxgen) SetPrintOrg(org string) Configtxgen {
	c.command = c.withString("printOrg", org)
	return c
}

// ApplyFlags imports changed configtxgen flags from `flags`.
func (c Configtxgen) ApplyFlags(flags *pflag.FlagSet) (Configtxgen, error) {
	var err error

	c.command, err = c.applyFlags(flags, configtxgenFlags)

	return c, err
}

// Execute runs configtxgen, settling on its exit code unless other policy is set.
func (c Configtxgen) Execute(ctx context.Context, options ...process.Option) (*process.Handle, error) {
	return c.execute(ctx, process.ExitCode(), options...)
}
