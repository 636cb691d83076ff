package invoke

import (
	"errors"
	"time"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
)

// Outcome is the terminal state of an invocation.
type Outcome int

const (
	Succeeded Outcome = iota
	Failed
	Cancelled
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// DefaultTimeout applies when a Request does not set one.
const DefaultTimeout = 30 * time.Second

// Request describes one program to run.
type Request struct {
	Program string
	Args    []string

	// Input is written to the program's stdin, which is then closed. A nil
	// Input leaves stdin attached to the null device.
	Input []byte

	// Dir is the working directory. Empty means the caller's.
	Dir string

	// Timeout bounds the whole run. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Result is the settled outcome of one invocation.
type Result struct {
	Outcome Outcome

	// ExitCode is the process's exit status, or -1 when it never exited on
	// its own.
	ExitCode int

	// Stdout and Stderr hold everything captured before the outcome was
	// decided, up to the invoker's output limit.
	Stdout []byte
	Stderr []byte

	// Truncated is set when output beyond the limit was discarded.
	Truncated bool

	// Err is nil only for Succeeded. It wraps ErrProcessLaunch,
	// ErrProcessExit, ErrCancelled, ErrTimedOut or ErrIO.
	Err error
}

// Cancelled reports whether the invocation was cancelled by the caller.
func (r *Result) Cancelled() bool {
	return r.Outcome == Cancelled || errors.Is(r.Err, kerrors.ErrCancelled)
}
