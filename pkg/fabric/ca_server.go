package fabric

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/process"
)

// CAServerCommand is the fabric-ca-server subcommand.
type CAServerCommand string

const (
	CAServerInit    CAServerCommand = "init"
	CAServerStart   CAServerCommand = "start"
	CAServerVersion CAServerCommand = "version"
	CAServerHelp    CAServerCommand = "help"
)

// CAServerReadyPattern matches fabric-ca-server log line announcing it serves requests.
const CAServerReadyPattern = `Listening on https?://`

var caServerFlags = []string{
	"home", "boot", "address", "port",
	"ca.name", "ca.certfile", "ca.keyfile", "ca.chainfile",
	"csr.cn", "csr.hosts",
	"db.type", "db.datasource",
	"tls.enabled", "tls.certfile", "tls.keyfile",
	"operations.listenaddress",
	"cfg.affiliations.allowremove", "cfg.identities.allowremove",
	"loglevel", "debug",
}

// CAServer builds fabric-ca-server invocations.
type CAServer struct {
	command
}

// NewCAServer constructs CAServer with `start` subcommand selected.
func NewCAServer() CAServer {
	return CAServer{command: newCommand(CAServerBinary, string(CAServerStart))}
}

func (s CAServer) SetCommand(cmd CAServerCommand) CAServer {
	if len(cmd) != 0 {
		s.subcommand = string(cmd)
	}
	return s
}

func (s CAServer) Command() CAServerCommand {
	return CAServerCommand(s.subcommand)
}

func (s CAServer) SetResolver(resolver Resolver) CAServer {
	if resolver != nil {
		s.resolver = resolver
	}
	return s
}

func (s CAServer) SetCompletionPolicy(policy process.CompletionPolicy) CAServer {
	if policy != nil {
		s.policy = policy
	}
	return s
}

func (s CAServer) SetHome(home string) CAServer {
	s.command = s.withString("home", home)
	return s
}

// SetBoot sets bootstrap admin identity credentials.
func (s CAServer) SetBoot(user, password string) CAServer {
	if len(user) == 0 {
		return s
	}

	s.command = s.withString("boot", fmt.Sprintf("%s:%s", user, password))
	return s
}

func (s CAServer) SetAddress(address string) CAServer {
	s.command = s.withString("address", address)
	return s
}

func (s CAServer) SetPort(port int) CAServer {
	s.command = s.withInt("port", port)
	return s
}

func (s CAServer) SetCAName(name string) CAServer {
	s.command = s.withString("ca.name", name)
	return s
}

func (s CAServer) SetCACertFile(file string) CAServer {
	s.command = s.withString("ca.certfile", file)
	return s
}

func (s CAServer) SetCAKeyFile(file string) CAServer {
	s.command = s.withString("ca.keyfile", file)
	return s
}

func (s CAServer) SetCAChainFile(file string) CAServer {
	s.command = s.withString("ca.chainfile", file)
	return s
}

func (s CAServer) SetCSRCommonName(cn string) CAServer {
	s.command = s.withString("csr.cn", cn)
	return s
}

func (s CAServer) SetCSRHosts(hosts ...string) CAServer {
	s.command = s.withList("csr.hosts", dedupe(hosts))
	return s
}

// SetDBType sets registry database type: sqlite3, postgres or mysql.
func (s CAServer) SetDBType(t string) CAServer {
	s.command = s.withString("db.type", t)
	return s
}

func (s CAServer) SetDBDataSource(source string) CAServer {
	s.command = s.withString("db.datasource", source)
	return s
}

func (s CAServer) SetTLSEnabled(enabled bool) CAServer {
	s.command = s.withBool("tls.enabled", enabled)
	return s
}

func (s CAServer) SetTLSCertFile(file string) CAServer {
	s.command = s.withString("tls.certfile", file)
	return s
}

func (s CAServer) SetTLSKeyFile(file string) CAServer {
	s.command = s.withString("tls.keyfile", file)
	return s
}

func (s CAServer) SetOperationsListenAddress(address string) CAServer {
	s.command = s.withString("operations.listenaddress", address)
	return s
}

func (s CAServer) SetAffiliationsAllowRemove(allow bool) CAServer {
	s.command = s.withBool("cfg.affiliations.allowremove", allow)
	return s
}

func (s CAServer) SetIdentitiesAllowRemove(allow bool) CAServer {
	s.command = s.withBool("cfg.identities.allowremove", allow)
	return s
}

func (s CAServer) SetLogLevel(level string) CAServer {
	s.command = s.withString("loglevel", level)
	return s
}

func (s CAServer) SetDebug(debug bool) CAServer {
	s.command = s.withBool("debug", debug)
	return s
}

// ApplyFlags imports changed fabric-ca-server flags from `flags`.
func (s CAServer) ApplyFlags(flags *pflag.FlagSet) (CAServer, error) {
	var err error

	if s.command, err = s.applyFlags(flags, caServerFlags); err != nil {
		return s, err
	}

	if hosts, ok := s.flags.Get("csr.hosts"); ok {
		s = s.SetCSRHosts(hosts.([]string)...)
	}

	return s, nil
}

// Execute runs fabric-ca-server.
// The `start` subcommand settles once server reports it's listening, others on exit code.
func (s CAServer) Execute(ctx context.Context, options ...process.Option) (*process.Handle, error) {
	var policy = process.ExitCode()

	if s.Command() == CAServerStart {
		policy = process.MustLogPattern(CAServerReadyPattern)
	}

	return s.execute(ctx, policy, options...)
}
