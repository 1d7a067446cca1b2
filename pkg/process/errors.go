package process

import (
	"errors"
	"fmt"
	"time"

	"github.com/timoth-y/fabnboot/pkg/term"
)

var (
	// ErrPrematureExit is returned when process exited cleanly
	// before the completion policy observed expected output.
	ErrPrematureExit = errors.New("process exited before becoming ready")

	// ErrTimeout is matched by TimeoutError.
	ErrTimeout = errors.New("process timed out")
)

// ExitError reports process termination with non-zero exit code.
type ExitError struct {
	Path   string
	Code   int
	Stderr []byte
}

func (e *ExitError) Error() string {
	if cause := term.ErrFromStderr(e.Stderr); cause != nil {
		return fmt.Sprintf("%s exited with code %d: %v", e.Path, e.Code, cause)
	}

	return fmt.Sprintf("%s exited with code %d", e.Path, e.Code)
}

// Is makes ExitError match term.ErrCmdFailed.
func (e *ExitError) Is(target error) bool {
	return target == term.ErrCmdFailed
}

// TimeoutError is returned when process does not settle before deadline.
// The process is killed prior to returning this error.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("%s did not complete within %s", e.Path, e.Timeout)
	}

	return fmt.Sprintf("%s did not complete before deadline", e.Path)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
