// Package utils provides shared helpers for sealkit.
//
// # Filesystem Utilities
//
//   - DerivedPath: builds sibling output paths such as secret-sealed.yaml
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # Terminal Utilities
//
//   - IsTerminal: checks if stdin is a terminal
//   - IsStdoutTerminal: checks if stdout is a terminal, used to disable spinners
package utils
