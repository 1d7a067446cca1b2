package fabric

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/pkg/process"
)

// CAClientCommand is the fabric-ca-client subcommand.
type CAClientCommand string

const (
	CAClientEnroll    CAClientCommand = "enroll"
	CAClientRegister  CAClientCommand = "register"
	CAClientReenroll  CAClientCommand = "reenroll"
	CAClientRevoke    CAClientCommand = "revoke"
	CAClientGetCAInfo CAClientCommand = "getcainfo"
	CAClientGenCRL    CAClientCommand = "gencrl"
	CAClientGenCSR    CAClientCommand = "gencsr"
	CAClientVersion   CAClientCommand = "version"
	CAClientHelp      CAClientCommand = "help"
)

// IdentityType is the type of identity registered on Fabric CA.
type IdentityType string

const (
	ClientIdentity  IdentityType = "client"
	PeerIdentity    IdentityType = "peer"
	OrdererIdentity IdentityType = "orderer"
	AdminIdentity   IdentityType = "admin"
	UserIdentity    IdentityType = "user"
)

// NormalizeIdentityType maps identity type spelled in any case to its canonical form.
func NormalizeIdentityType(t IdentityType) IdentityType {
	return IdentityType(strings.ToLower(strings.TrimSpace(string(t))))
}

var caClientFlags = []string{
	"url", "caname", "home", "mspdir", "myhost",
	"csr.cn", "csr.hosts", "csr.keyrequest.algo", "csr.keyrequest.size", "csr.keyrequest.reusekey",
	"csr.names", "csr.serialnumber",
	"enrollment.profile", "enrollment.label", "enrollment.type", "enrollment.attrs",
	"id.name", "id.secret", "id.type", "id.affiliation", "id.attrs", "id.maxenrollments",
	"tls.certfiles", "tls.client.certfile", "tls.client.keyfile",
	"revoke.name", "revoke.reason",
	"loglevel", "debug",
}

// CAClient builds fabric-ca-client invocations.
// It is a value type: every setter returns an updated copy and ignores zero values.
type CAClient struct {
	command
}

// NewCAClient constructs CAClient with `help` subcommand selected.
func NewCAClient() CAClient {
	return CAClient{command: newCommand(CAClientBinary, string(CAClientHelp))}
}

// SetCommand selects fabric-ca-client subcommand.
func (c CAClient) SetCommand(cmd CAClientCommand) CAClient {
	if len(cmd) != 0 {
		c.subcommand = string(cmd)
	}
	return c
}

// Command returns selected subcommand.
func (c CAClient) Command() CAClientCommand {
	return CAClientCommand(c.subcommand)
}

// SetResolver overrides binary location strategy.
func (c CAClient) SetResolver(resolver Resolver) CAClient {
	if resolver != nil {
		c.resolver = resolver
	}
	return c
}

// SetCompletionPolicy overrides the default ExitCode policy.
func (c CAClient) SetCompletionPolicy(policy process.CompletionPolicy) CAClient {
	if policy != nil {
		c.policy = policy
	}
	return c
}

func (c CAClient) SetURL(url string) CAClient {
	c.command = c.withString("url", url)
	return c
}

func (c CAClient) SetCAName(name string) CAClient {
	c.command = c.withString("caname", name)
	return c
}

func (c CAClient) SetHome(home string) CAClient {
	c.command = c.withString("home", home)
	return c
}

func (c CAClient) SetMSPDir(dir string) CAClient {
	c.command = c.withString("mspdir", dir)
	return c
}

func (c CAClient) SetMyHost(host string) CAClient {
	c.command = c.withString("myhost", host)
	return c
}

func (c CAClient) SetCSRCommonName(cn string) CAClient {
	c.command = c.withString("csr.cn", cn)
	return c
}

// SetCSRHosts sets subject alternative names, dropping duplicates.
func (c CAClient) SetCSRHosts(hosts ...string) CAClient {
	c.command = c.withList("csr.hosts", dedupe(hosts))
	return c
}

func (c CAClient) SetCSRKeyAlgo(algo string) CAClient {
	c.command = c.withString("csr.keyrequest.algo", algo)
	return c
}

func (c CAClient) SetCSRKeySize(size int) CAClient {
	c.command = c.withInt("csr.keyrequest.size", size)
	return c
}

func (c CAClient) SetCSRKeyReuse(reuse bool) CAClient {
	c.command = c.withBool("csr.keyrequest.reusekey", reuse)
	return c
}

// SetCSRNames sets subject names, e.g. "C=US,ST=North Carolina,O=Hyperledger".
func (c CAClient) SetCSRNames(names ...string) CAClient {
	c.command = c.withList("csr.names", names)
	return c
}

func (c CAClient) SetCSRSerialNumber(serial string) CAClient {
	c.command = c.withString("csr.serialnumber", serial)
	return c
}

func (c CAClient) SetEnrollmentProfile(profile string) CAClient {
	c.command = c.withString("enrollment.profile", profile)
	return c
}

func (c CAClient) SetEnrollmentLabel(label string) CAClient {
	c.command = c.withString("enrollment.label", label)
	return c
}

// SetEnrollmentType sets type of enrollment request: x509 or idemix.
func (c CAClient) SetEnrollmentType(t string) CAClient {
	c.command = c.withString("enrollment.type", t)
	return c
}

func (c CAClient) SetEnrollmentAttrs(attrs ...string) CAClient {
	c.command = c.withList("enrollment.attrs", attrs)
	return c
}

func (c CAClient) SetIDName(name string) CAClient {
	c.command = c.withString("id.name", name)
	return c
}

func (c CAClient) SetIDSecret(secret string) CAClient {
	c.command = c.withString("id.secret", secret)
	return c
}

// SetIDType sets normalized identity type.
func (c CAClient) SetIDType(t IdentityType) CAClient {
	c.command = c.withString("id.type", string(NormalizeIdentityType(t)))
	return c
}

func (c CAClient) SetIDAffiliation(affiliation string) CAClient {
	c.command = c.withString("id.affiliation", affiliation)
	return c
}

// SetIDAttrs sets identity attributes, e.g. "hf.Registrar.Roles=peer".
func (c CAClient) SetIDAttrs(attrs ...string) CAClient {
	c.command = c.withList("id.attrs", attrs)
	return c
}

func (c CAClient) SetIDMaxEnrollments(max int) CAClient {
	c.command = c.withInt("id.maxenrollments", max)
	return c
}

func (c CAClient) SetTLSCertFiles(files ...string) CAClient {
	c.command = c.withList("tls.certfiles", files)
	return c
}

func (c CAClient) SetTLSClientCertFile(file string) CAClient {
	c.command = c.withString("tls.client.certfile", file)
	return c
}

func (c CAClient) SetTLSClientKeyFile(file string) CAClient {
	c.command = c.withString("tls.client.keyfile", file)
	return c
}

func (c CAClient) SetRevokeName(name string) CAClient {
	c.command = c.withString("revoke.name", name)
	return c
}

func (c CAClient) SetRevokeReason(reason string) CAClient {
	c.command = c.withString("revoke.reason", reason)
	return c
}

func (c CAClient) SetLogLevel(level string) CAClient {
	c.command = c.withString("loglevel", level)
	return c
}

func (c CAClient) SetDebug(debug bool) CAClient {
	c.command = c.withBool("debug", debug)
	return c
}

// ApplyFlags imports changed fabric-ca-client flags from `flags`.
func (c CAClient) ApplyFlags(flags *pflag.FlagSet) (CAClient, error) {
	var err error

	if c.command, err = c.applyFlags(flags, caClientFlags); err != nil {
		return c, err
	}

	if hosts, ok := c.flags.Get("csr.hosts"); ok {
		c = c.SetCSRHosts(hosts.([]string)...)
	}

	if t, ok := c.flags.Get("id.type"); ok {
		c = c.SetIDType(IdentityType(fmt.Sprint(t)))
	}

	return c, nil
}

// MSPDir returns directory where enrollment materials would be stored,
// following fabric-ca-client resolution of --mspdir and --home.
func (c CAClient) MSPDir() string {
	var home, mspDir string

	if v, ok := c.flags.Get("home"); ok {
		home = fmt.Sprint(v)
	} else if env := os.Getenv("FABRIC_CA_CLIENT_HOME"); len(env) != 0 {
		home = env
	} else if userHome, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(userHome, ".fabric-ca-client")
	}

	mspDir = "msp"
	if v, ok := c.flags.Get("mspdir"); ok {
		mspDir = fmt.Sprint(v)
	}

	if filepath.IsAbs(mspDir) {
		return mspDir
	}

	return filepath.Join(home, mspDir)
}

// Execute runs fabric-ca-client, settling on its exit code unless other policy is set.
func (c CAClient) Execute(ctx context.Context, options ...process.Option) (*process.Handle, error) {
	return c.execute(ctx, process.ExitCode(), options...)
}
