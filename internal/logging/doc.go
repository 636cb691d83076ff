// Package logger provides leveled, colored logging for sealkit commands.
//
// A Logger is a small value that is created once per command invocation and
// passed explicitly to the components that report progress (the transcoder,
// the process invoker, the workflows). Nothing in sealkit logs through
// package-level state.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows debug details as well
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose
//	Logger.Debugf()         // Shown with --debug
//	Logger.Warnf()          // Always shown
//	Logger.WarnfAlways()    // Always shown, even when output is quiet
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Logs with --debug and returns the error
//
// # Output
//
// Messages go to Out (info, debug) and Err (warnings, errors). Both default
// to the process's stdout and stderr when nil, so the zero Logger is usable.
package logger
