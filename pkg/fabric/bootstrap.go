package fabric

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/timoth-y/fabnboot/pkg/fabric/config"
	"github.com/timoth-y/fabnboot/pkg/process"
)

// ErrAdminRequestRejected is returned when orderer admin endpoint responds with non-2xx status.
var ErrAdminRequestRejected = errors.New("orderer admin request rejected")

// EnrollmentResult is the outcome of successful identity enrollment.
type EnrollmentResult struct {
	Handle    *process.Handle
	MSPDir    string
	KeyRename SoftResult
}

// IssueOrderer writes orderer configuration `cfg` to `path`.
// Returns path of the written orderer.yaml.
func IssueOrderer(cfg config.OrdererConfig, path string, options ...Option) (string, error) {
	var args = applyOptions("orderer", options)

	path, err := cfg.Save(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue orderer configuration")
	}

	args.logger.Infof("Orderer configuration issued at %s", path)

	return path, nil
}

// BootOrderer starts orderer with configuration located at `cfgPath`,
// which is either orderer.yaml file or directory containing it.
// Returns once orderer begins serving requests, leaving it running.
func BootOrderer(ctx context.Context, cfgPath string, options ...Option) (*process.Handle, error) {
	var (
		args = applyOptions("orderer", options)
		dir  = cfgPath
	)

	if strings.HasSuffix(cfgPath, ".yaml") {
		dir = filepath.Dir(cfgPath)
	}

	handle, err := NewOrderer().
		SetCommand(OrdererStart).
		SetConfigPath(dir).
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to boot orderer")
	}

	args.logger.Infof("Orderer started with pid %d", handle.Pid())

	return handle, nil
}

// StartOrderer issues orderer configuration to `path` and boots orderer from it.
func StartOrderer(ctx context.Context, cfg config.OrdererConfig, path string, options ...Option) (*process.Handle, error) {
	path, err := IssueOrderer(cfg, path, options...)
	if err != nil {
		return nil, err
	}

	return BootOrderer(ctx, path, options...)
}

// ClientEnrollment enrolls identity with fabric-ca-client `client`
// and renames enrolled private key to canonical name afterwards.
//
// Key renaming is best-effort: its failure is logged and reported
// in EnrollmentResult.KeyRename, but doesn't fail enrollment.
func ClientEnrollment(ctx context.Context, client CAClient, options ...Option) (*EnrollmentResult, error) {
	var args = applyOptions("enroll", options)

	handle, err := client.
		SetCommand(CAClientEnroll).
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enroll identity")
	}

	var result = &EnrollmentResult{
		Handle: handle,
		MSPDir: client.MSPDir(),
	}

	if result.KeyRename = RenameKey(result.MSPDir, args.keyName); !result.KeyRename.OK() {
		args.logger.Error(result.KeyRename.Err, "Failed to rename enrolled key")
	}

	args.logger.Infof("Identity enrolled into %s", result.MSPDir)

	return result, nil
}

// ClientRegistration registers identity with fabric-ca-client `client`.
func ClientRegistration(ctx context.Context, client CAClient, options ...Option) (*process.Handle, error) {
	var args = applyOptions("register", options)

	handle, err := client.
		SetCommand(CAClientRegister).
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register identity")
	}

	return handle, nil
}

// ServerBoot starts fabric-ca-server `server`.
// Returns once server is listening, leaving it running.
func ServerBoot(ctx context.Context, server CAServer, options ...Option) (*process.Handle, error) {
	var args = applyOptions("ca", options)

	handle, err := server.
		SetCommand(CAServerStart).
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to boot CA server")
	}

	args.logger.Infof("CA server started with pid %d", handle.Pid())

	return handle, nil
}

// CreateGenesisBlock generates genesis block for `channelID` using `profile` from configtx.yaml
// located in `configPath` directory, and writes it to `outputBlock`.
func CreateGenesisBlock(
	ctx context.Context,
	profile, channelID, configPath, outputBlock string,
	options ...Option,
) error {
	if len(outputBlock) == 0 {
		return errors.New("genesis block output path is required")
	}

	if err := os.MkdirAll(filepath.Dir(outputBlock), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", outputBlock)
	}

	if _, err := RunConfigtxgen(ctx, NewConfigtxgen().
		SetProfile(profile).
		SetChannelID(channelID).
		SetConfigPath(configPath).
		SetOutputBlock(outputBlock),
		options...,
	); err != nil {
		return fmt.Errorf("failed to create genesis block: %w", err)
	}

	return nil
}

// RunConfigtxgen runs configtxgen invocation `gen` to completion.
func RunConfigtxgen(ctx context.Context, gen Configtxgen, options ...Option) (*process.Handle, error) {
	var args = applyOptions("configtxgen", options)

	handle, err := gen.
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, err
	}

	return handle, nil
}

// OSNAdminJoin joins orderer to channel using osnadmin invocation `admin`.
func OSNAdminJoin(ctx context.Context, admin OSNAdmin, options ...Option) (*process.Handle, error) {
	var args = applyOptions("osnadmin", options)

	handle, err := admin.
		SetCommand(OSNAdminChannelJoin).
		SetResolver(args.resolver).
		Execute(ctx, args.runOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to join orderer to channel")
	}

	if err = osnadminStatus(handle.Output()); err != nil {
		return nil, errors.Wrap(err, "failed to join orderer to channel")
	}

	return handle, nil
}

var osnadminStatusPattern = regexp.MustCompile(`(?m)^Status:[ \t]*(\d{3})[ \t]*$`)

// osnadminStatus checks HTTP status printed by osnadmin, which exits 0 on rejected requests.
// Output without status line is accepted.
func osnadminStatus(output []byte) error {
	var match = osnadminStatusPattern.FindSubmatchIndex(output)
	if match == nil {
		return nil
	}

	code, _ := strconv.Atoi(string(output[match[2]:match[3]]))
	if code >= 200 && code < 300 {
		return nil
	}

	if body := strings.TrimSpace(string(output[match[1]:])); len(body) != 0 {
		return fmt.Errorf("%w: status %d: %s", ErrAdminRequestRejected, code, body)
	}

	return fmt.Errorf("%w: status %d", ErrAdminRequestRejected, code)
}
