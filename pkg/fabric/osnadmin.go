package fabric

import (
	"context"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/process"
)

// OSNAdminCommand is the osnadmin subcommand.
type OSNAdminCommand string

const (
	OSNAdminChannelJoin   OSNAdminCommand = "channel join"
	OSNAdminChannelList   OSNAdminCommand = "channel list"
	OSNAdminChannelRemove OSNAdminCommand = "channel remove"
)

var osnadminFlags = []string{
	"orderer-address", "ca-file", "client-cert", "client-key",
	"channelID", "config-block",
}

// OSNAdmin builds osnadmin invocations against the orderer channel participation API.
type OSNAdmin struct {
	command
}

// NewOSNAdmin constructs OSNAdmin with `channel list` subcommand selected.
func NewOSNAdmin() OSNAdmin {
	return OSNAdmin{command: newCommand(OSNAdminBinary, string(OSNAdminChannelList))}
}

func (a OSNAdmin) SetCommand(cmd OSNAdminCommand) OSNAdmin {
	if len(cmd) != 0 {
		a.subcommand = string(cmd)
	}
	return a
}

func (a OSNAdmin) Command() OSNAdminCommand {
	return OSNAdminCommand(a.subcommand)
}

func (a OSNAdmin) SetResolver(resolver Resolver) OSNAdmin {
	if resolver != nil {
		a.resolver = resolver
	}
	return a
}

func (a OSNAdmin) SetCompletionPolicy(policy process.CompletionPolicy) OSNAdmin {
	if policy != nil {
		a.policy = policy
	}
	return a
}

// SetOrdererAddress sets admin endpoint of the orderer, e.g. localhost:7053.
func (a OSNAdmin) SetOrdererAddress(address string) OSNAdmin {
	a.command = a.withString("orderer-address", address)
	return a
}

func (a OSNAdmin) SetCAFile(file string) OSNAdmin {
	a.command = a.withString("ca-file", file)
	return a
}

func (a OSNAdmin) SetClientCert(file string) OSNAdmin {
	a.command = a.withString("client-cert", file)
	return a
}

func (a OSNAdmin) SetClientKey(file string) OSNAdmin {
	a.command = a.withString("client-key", file)
	return a
}

func (a OSNAdmin) SetChannelID(id string) OSNAdmin {
	a.command = a.withString("channelID", id)
	return a
}

func (a OSNAdmin) SetConfigBlock(path string) OSNAdmin {
	a.command = a.withString("config-block", path)
	return a
}

// ApplyFlags imports changed osnadmin flags from `flags`.
func (a OSNAdmin) ApplyFlags(flags *pflag.FlagSet) (OSNAdmin, error) {
	var err error

	a.command, err = a.applyFlags(flags, osnadminFlags)

	return a, err
}

// Execute runs osnadmin, settling on its exit code unless other policy is set.
func (a OSNAdmin) Execute(ctx context.Context, options ...process.Option) (*process.Handle, error) {
	return a.execute(ctx, process.ExitCode(), options...)
}
