// Package invoke runs external command-line tools with cancellation and a
// timeout.
//
// Every call owns exactly one child process and ends in exactly one of four
// outcomes:
//
//   - Succeeded: the process exited with status 0
//   - Failed: the process exited non-zero, or could not be started
//   - Cancelled: the caller's context was done first
//   - TimedOut: the configured timeout elapsed first
//
// The first trigger to fire wins. Cancelling a context after the call has
// returned has no effect on the result. On cancellation or timeout the child
// is sent SIGTERM, and killed if it is still running after a grace period.
// Run never returns before the child has been reaped, so no process or
// goroutine outlives the call.
//
// Arguments are always passed to the program as a discrete argv. Nothing is
// ever interpreted by a shell.
//
//	inv := invoke.New(log)
//	result := inv.Run(ctx, invoke.Request{
//	    Program: "kubeseal",
//	    Args:    []string{"--cert", certPath, "--format", "yaml"},
//	    Input:   secretYAML,
//	})
//	if result.Err != nil {
//	    return result.Err
//	}
package invoke
