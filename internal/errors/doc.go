// Package errors provides typed error values for sealkit.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Document errors: the input is not a usable manifest (ErrParse, ErrNotASecret)
//   - Validation errors: untrusted values failed the naming grammar (ErrValidation)
//   - Codec errors: a single data key could not be transcoded (ErrEncode, ErrDecode)
//   - Process errors: the outcome of an external tool (ErrProcessLaunch, ErrProcessExit,
//     ErrCancelled, ErrTimedOut)
//   - Certificate errors: no usable sealing certificate is configured
//   - I/O errors: reading or writing persisted documents (ErrIO)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: metadata.name is missing", errors.ErrParse)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrCancelled) {
//	    // Report softly, this is not a failure.
//	}
//
// Per-key codec errors are never returned from a transcoding call. They are
// collected in the call's summary so one bad key cannot block the others.
package errors
