package fabric

import (
	"context"

	"github.com/timoth-y/fabnboot/pkg/process"
)

// OrdererCommand is the orderer subcommand.
type OrdererCommand string

const (
	OrdererStart   OrdererCommand = "start"
	OrdererVersion OrdererCommand = "version"
	OrdererHelp    OrdererCommand = "help"
)

// OrdererReadyPattern matches orderer log line announcing it serves requests.
const OrdererReadyPattern = `Beginning to serve requests`

// Orderer builds orderer invocations.
//
// Orderer binary takes no configuration flags:
// it reads orderer.yaml from FABRIC_CFG_PATH and ORDERER_* environment overrides.
type Orderer struct {
	command
}

// NewOrderer constructs Orderer with `start` subcommand selected.
func NewOrderer() Orderer {
	return Orderer{command: newCommand(OrdererBinary, string(OrdererStart))}
}

func (o Orderer) SetCommand(cmd OrdererCommand) Orderer {
	if len(cmd) != 0 {
		o.subcommand = string(cmd)
	}
	return o
}

func (o Orderer) Command() OrdererCommand {
	return OrdererCommand(o.subcommand)
}

func (o Orderer) SetResolver(resolver Resolver) Orderer {
	if resolver != nil {
		o.resolver = resolver
	}
	return o
}

func (o Orderer) SetCompletionPolicy(policy process.CompletionPolicy) Orderer {
	if policy != nil {
		o.policy = policy
	}
	return o
}

// SetConfigPath sets directory containing orderer.yaml.
func (o Orderer) SetConfigPath(dir string) Orderer {
	if len(dir) != 0 {
		o.command = o.withEnv("FABRIC_CFG_PATH", dir)
	}
	return o
}

// SetEnv sets environment override, e.g. ORDERER_GENERAL_LISTENPORT.
func (o Orderer) SetEnv(name, value string) Orderer {
	if len(value) != 0 {
		o.command = o.withEnv(name, value)
	}
	return o
}

// Execute runs orderer.
// The `start` subcommand settles once orderer begins serving requests, others on exit code.
func (o Orderer) Execute(ctx context.Context, options ...process.Option) (*process.Handle, error) {
	var policy = process.ExitCode()

	if o.Command() == OrdererStart {
		policy = process.MustLogPattern(OrdererReadyPattern)
	}

	return o.execute(ctx, policy, options...)
}
