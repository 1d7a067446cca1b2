package process

import (
	"fmt"
	"regexp"
)

// CompletionPolicy decides when a spawned process is considered successfully started or done.
//
// Available policies are ExitCode, LogPattern and FirstOutput.
type CompletionPolicy interface {
	// completes reports whether the output `line` settles the run successfully.
	completes(line string) bool
	// exited translates process exit status observed before any completing line.
	exited(err error) error
	String() string
}

// ExitCode resolves on process exit: success if and only if exit code is 0.
// Intended for one-shot commands like configtxgen or fabric-ca-client enroll.
func ExitCode() CompletionPolicy {
	return exitCodePolicy{}
}

type exitCodePolicy struct{}

func (exitCodePolicy) completes(string) bool { return false }

func (exitCodePolicy) exited(err error) error { return err }

func (exitCodePolicy) String() string { return "exit-code" }

// LogPattern resolves as soon as a stdout or stderr line matches `pattern`,
// independently of process exit. Intended for long-running services
// which announce their readiness in logs.
//
// Exit of the process before the match is a failure, even with zero exit code.
func LogPattern(pattern *regexp.Regexp) CompletionPolicy {
	return logPatternPolicy{pattern: pattern}
}

// MustLogPattern is like LogPattern but compiles `expr`, panicking on invalid expressions.
func MustLogPattern(expr string) CompletionPolicy {
	return LogPattern(regexp.MustCompile(expr))
}

type logPatternPolicy struct {
	pattern *regexp.Regexp
}

func (p logPatternPolicy) completes(line string) bool {
	return p.pattern.MatchString(line)
}

func (p logPatternPolicy) exited(err error) error {
	if err != nil {
		return err
	}

	return fmt.Errorf("%w: no output line matched /%s/", ErrPrematureExit, p.pattern)
}

func (p logPatternPolicy) String() string {
	return fmt.Sprintf("log-pattern(/%s/)", p.pattern)
}

// FirstOutput resolves on the very first output line on either stream,
// assuming a command which produced output have succeeded.
//
// Process which exits before writing anything is settled by its exit code.
func FirstOutput() CompletionPolicy {
	return firstOutputPolicy{}
}

type firstOutputPolicy struct{}

func (firstOutputPolicy) completes(string) bool { return true }

func (firstOutputPolicy) exited(err error) error { return err }

func (firstOutputPolicy) String() string { return "first-output" }
