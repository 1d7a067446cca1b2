package term

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInvalidArgs = errors.New("invalid command arguments")
	ErrCmdFailed   = errors.New("command failed")
)

// errPrefixes are stripped from the reported stderr line.
var errPrefixes = []string{"Error: ", "FATA ", "[FATAL] ", "panic: "}

// ErrFromStderr takes the last non-empty line of `stderr` as failure cause,
// returning it wrapped with ErrCmdFailed, or <nil> when there is nothing to report.
func ErrFromStderr(stderr []byte) error {
	var line = GetLastLine(bytes.NewReader(stderr))
	if len(line) == 0 {
		return nil
	}

	for _, prefix := range errPrefixes {
		if idx := strings.Index(line, prefix); idx >= 0 {
			line = line[idx+len(prefix):]
			break
		}
	}

	return fmt.Errorf("%s: %w", line, ErrCmdFailed)
}

// GetLastLine returns last non-empty line from `reader`.
func GetLastLine(reader io.Reader) string {
	var last string

	s := bufio.NewScanner(reader)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); len(line) != 0 {
			last = line
		}
	}

	if s.Err() != nil {
		return ""
	}

	return last
}
