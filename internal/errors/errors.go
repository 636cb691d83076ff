package errors

import "errors"

// Document errors indicate the input cannot be processed as a manifest.
var (
	// ErrParse indicates the input is not a well-formed YAML document.
	ErrParse = errors.New("failed to parse document")

	// ErrNotASecret indicates the document is not a Kubernetes Secret.
	ErrNotASecret = errors.New("document is not a Kubernetes Secret")

	// ErrNotSealedSecret indicates the document is not a SealedSecret.
	ErrNotSealedSecret = errors.New("document is not a SealedSecret")
)

// ErrValidation indicates a name or namespace failed the RFC 1123 naming grammar.
var ErrValidation = errors.New("invalid kubernetes name")

// Codec errors are reported per data key and never abort a batch.
var (
	// ErrEncode indicates a value could not be base64 encoded.
	ErrEncode = errors.New("failed to encode value")

	// ErrDecode indicates a value could not be base64 decoded.
	ErrDecode = errors.New("failed to decode value")
)

// Process errors describe how an external tool invocation ended.
var (
	// ErrProcessLaunch indicates the executable is missing or could not be started.
	ErrProcessLaunch = errors.New("failed to launch process")

	// ErrProcessExit indicates the process ran and exited with a failure status.
	ErrProcessExit = errors.New("process exited with failure")

	// ErrCancelled indicates the operation was cancelled by the user.
	ErrCancelled = errors.New("operation was cancelled by user")

	// ErrTimedOut indicates the process did not finish within its timeout.
	ErrTimedOut = errors.New("operation timed out")
)

// Certificate errors indicate no usable sealing certificate is configured.
var (
	// ErrCertFolderNotConfigured indicates no certificate folder has been set.
	ErrCertFolderNotConfigured = errors.New("no certificate folder configured")

	// ErrNoCertificateSelected indicates no active certificate has been chosen.
	ErrNoCertificateSelected = errors.New("no certificate selected")

	// ErrCertificateNotFound indicates the certificate file does not exist.
	ErrCertificateNotFound = errors.New("certificate file not found")
)

// ErrIO indicates reading or writing a persisted document failed.
var ErrIO = errors.New("i/o error")
