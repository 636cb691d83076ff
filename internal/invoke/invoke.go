package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
)

// DefaultGracePeriod is how long a terminated child gets to exit before it is
// killed.
const DefaultGracePeriod = 5 * time.Second

// probeTimeout bounds Probe.
const probeTimeout = 5 * time.Second

// Invoker runs external programs. It holds no per-call state, so one Invoker
// may serve concurrent calls.
type Invoker struct {
	Log logger.Logger

	// MaxOutput caps each of stdout and stderr. Zero means DefaultMaxOutput.
	MaxOutput int

	// GracePeriod is the delay between SIGTERM and SIGKILL. Zero means
	// DefaultGracePeriod.
	GracePeriod time.Duration
}

// New returns an Invoker with default limits.
func New(log logger.Logger) *Invoker {
	return &Invoker{Log: log}
}

func (inv *Invoker) maxOutput() int {
	if inv.MaxOutput > 0 {
		return inv.MaxOutput
	}
	return DefaultMaxOutput
}

func (inv *Invoker) gracePeriod() time.Duration {
	if inv.GracePeriod > 0 {
		return inv.GracePeriod
	}
	return DefaultGracePeriod
}

// invocation is the state of one running child.
type invocation struct {
	req    Request
	cmd    *exec.Cmd
	stdout *cappedBuffer
	stderr *cappedBuffer
	exited chan error
}

// Run executes req and blocks until it settles. The returned Result is never
// nil.
func (inv *Invoker) Run(ctx context.Context, req Request) *Result {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if ctx.Err() != nil {
		inv.Log.Debugf("Not starting %s: already cancelled", req.Program)
		return &Result{
			Outcome:  Cancelled,
			ExitCode: -1,
			Err:      fmt.Errorf("%w: %s was not started", kerrors.ErrCancelled, req.Program),
		}
	}

	run := &invocation{
		req:    req,
		cmd:    exec.Command(req.Program, req.Args...),
		stdout: newCappedBuffer(inv.maxOutput()),
		stderr: newCappedBuffer(inv.maxOutput()),
		exited: make(chan error, 1),
	}
	run.cmd.Dir = req.Dir
	run.cmd.Stdout = run.stdout
	run.cmd.Stderr = run.stderr
	if req.Input != nil {
		// exec copies the reader into the pipe and closes it once drained.
		run.cmd.Stdin = bytes.NewReader(req.Input)
	}
	// Bounds how long Wait blocks on pipes held open by grandchildren.
	run.cmd.WaitDelay = inv.gracePeriod()

	inv.Log.Debugf("Running %s (timeout %s)", describe(req), timeout)
	if err := run.cmd.Start(); err != nil {
		inv.Log.Debugf("Failed to start %s: %v", req.Program, err)
		return &Result{
			Outcome:  Failed,
			ExitCode: -1,
			Err:      fmt.Errorf("%w: %s: %v", kerrors.ErrProcessLaunch, req.Program, err),
		}
	}
	go func() {
		run.exited <- run.cmd.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var result *Result
	select {
	case err := <-run.exited:
		result = run.exitResult(err)
	case <-ctx.Done():
		result = inv.stop(run, Cancelled,
			fmt.Errorf("%w: %s was stopped", kerrors.ErrCancelled, req.Program))
	case <-timer.C:
		result = inv.stop(run, TimedOut,
			fmt.Errorf("%w: %s did not finish within %s", kerrors.ErrTimedOut, req.Program, timeout))
	}

	inv.Log.Debugf("%s %s (exit code %d)", req.Program, result.Outcome, result.ExitCode)
	return result
}

// RunToFile is Run for tools whose output is the product: on success stdout is
// written to dest. A failed write turns the result into Failed wrapping ErrIO.
func (inv *Invoker) RunToFile(ctx context.Context, req Request, dest string) *Result {
	result := inv.Run(ctx, req)
	if result.Outcome != Succeeded {
		return result
	}

	if err := os.WriteFile(dest, result.Stdout, 0600); err != nil {
		result.Outcome = Failed
		result.Err = fmt.Errorf("%w: failed to write output file %s: %v", kerrors.ErrIO, dest, err)
		return result
	}
	inv.Log.Debugf("Wrote %d bytes to %s", len(result.Stdout), dest)
	return result
}

// Probe checks that program can be started and exits successfully with args,
// typically a version flag.
func (inv *Invoker) Probe(ctx context.Context, program string, args ...string) error {
	result := inv.Run(ctx, Request{Program: program, Args: args, Timeout: probeTimeout})
	return result.Err
}

// stop ends a run that was cancelled or timed out. If the child already exited
// in the meantime, the natural exit wins.
func (inv *Invoker) stop(run *invocation, outcome Outcome, reason error) *Result {
	select {
	case err := <-run.exited:
		return run.exitResult(err)
	default:
	}

	inv.terminate(run)
	return &Result{
		Outcome:   outcome,
		ExitCode:  -1,
		Stdout:    run.stdout.Bytes(),
		Stderr:    run.stderr.Bytes(),
		Truncated: run.stdout.truncated || run.stderr.truncated,
		Err:       reason,
	}
}

// terminate sends SIGTERM and waits for the child to be reaped, escalating to
// SIGKILL after the grace period.
func (inv *Invoker) terminate(run *invocation) {
	process := run.cmd.Process
	if err := process.Signal(syscall.SIGTERM); err != nil {
		// No SIGTERM on Windows.
		_ = process.Kill()
	}

	grace := time.NewTimer(inv.gracePeriod())
	defer grace.Stop()

	select {
	case <-run.exited:
	case <-grace.C:
		inv.Log.Debugf("%s ignored SIGTERM, killing it", run.req.Program)
		_ = process.Kill()
		<-run.exited
	}
}

func (run *invocation) exitResult(err error) *Result {
	result := &Result{
		Stdout:    run.stdout.Bytes(),
		Stderr:    run.stderr.Bytes(),
		Truncated: run.stdout.truncated || run.stderr.truncated,
	}

	// ErrWaitDelay means the child exited but something it spawned kept the
	// output pipes open. The child's own status is what counts.
	if err == nil || (errors.Is(err, exec.ErrWaitDelay) && run.cmd.ProcessState.Success()) {
		result.Outcome = Succeeded
		return result
	}

	result.Outcome = Failed
	result.ExitCode = -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = fmt.Errorf("%w: %s exited with code %d: %s",
			kerrors.ErrProcessExit, run.req.Program, result.ExitCode, diagnostic(result))
		return result
	}
	result.Err = fmt.Errorf("%w: %s: %v", kerrors.ErrProcessExit, run.req.Program, err)
	return result
}

// diagnostic prefers stderr, where tools write their errors, over stdout.
func diagnostic(result *Result) string {
	if text := strings.TrimSpace(string(result.Stderr)); text != "" {
		return text
	}
	if text := strings.TrimSpace(string(result.Stdout)); text != "" {
		return text
	}
	return "no output"
}

func describe(req Request) string {
	if len(req.Args) == 0 {
		return req.Program
	}
	return req.Program + " " + strings.Join(req.Args, " ")
}

// FindBinary resolves name on PATH. An explicit path is returned unchanged if
// it exists.
func FindBinary(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found on PATH: %v", kerrors.ErrProcessLaunch, name, err)
	}
	return path, nil
}
