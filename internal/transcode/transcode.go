package transcode

import (
	"fmt"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/PolarWolf314/sealkit/internal/manifest"
)

// Mode selects the direction of a transcoding pass.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

// KeyError records a data key that could not be transcoded.
type KeyError struct {
	Key string
	Err error
}

func (e KeyError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e KeyError) Unwrap() error {
	return e.Err
}

// Summary describes the outcome of one pass over a data map.
type Summary struct {
	// Changed counts values that were rewritten.
	Changed int

	// Skipped counts values that were left as they were: empty values, values
	// already in the target form, and binary payloads on decode.
	Skipped int

	Errors []KeyError
}

// Transcoder rewrites data map values. It holds no state between calls and is
// safe for concurrent use on different documents.
type Transcoder struct {
	Log logger.Logger
}

// New returns a Transcoder reporting through log.
func New(log logger.Logger) *Transcoder {
	return &Transcoder{Log: log}
}

// Run dispatches to Encode or Decode.
func (t *Transcoder) Run(doc *manifest.Document, mode Mode) (Summary, error) {
	if mode == ModeDecode {
		return t.Decode(doc)
	}
	return t.Encode(doc)
}

// Encode base64-encodes every non-empty value that does not already look
// encoded.
//
// Returns ErrNotASecret, without touching the document, when the document is
// not a Secret.
func (t *Transcoder) Encode(doc *manifest.Document) (Summary, error) {
	return t.transcode(doc, ModeEncode, func(key, value string) (string, bool, error) {
		if IsProbablyEncoded(value) {
			t.Log.Debugf("Key %q already looks base64 encoded, skipping", key)
			return value, false, nil
		}
		return codec.EncodeToString([]byte(value)), true, nil
	})
}

// Decode replaces every value that looks base64 encoded with its decoded text,
// unless the decoded bytes are binary.
//
// Returns ErrNotASecret, without touching the document, when the document is
// not a Secret.
func (t *Transcoder) Decode(doc *manifest.Document) (Summary, error) {
	return t.transcode(doc, ModeDecode, func(key, value string) (string, bool, error) {
		if !IsProbablyEncoded(value) {
			t.Log.Debugf("Key %q is not base64 encoded, skipping", key)
			return value, false, nil
		}

		decoded, err := codec.DecodeString(value)
		if err != nil {
			return value, false, fmt.Errorf("%w: %v", kerrors.ErrDecode, err)
		}
		if !IsPrintable(decoded) {
			t.Log.Debugf("Key %q holds binary data, keeping it encoded", key)
			return value, false, nil
		}
		return string(decoded), true, nil
	})
}

// rewriteFunc returns the new value for a key and whether it changed.
type rewriteFunc func(key, value string) (string, bool, error)

func (t *Transcoder) transcode(doc *manifest.Document, mode Mode, rewrite rewriteFunc) (Summary, error) {
	var summary Summary

	if doc == nil || doc.Kind() != manifest.KindSecret {
		return summary, kerrors.ErrNotASecret
	}

	data := doc.Data()
	if data == nil {
		t.Log.Debugf("Secret has no data field, nothing to %s", mode)
		return summary, nil
	}

	codecErr := kerrors.ErrEncode
	if mode == ModeDecode {
		codecErr = kerrors.ErrDecode
	}

	for _, entry := range data.Entries() {
		if !entry.Scalar {
			keyErr := KeyError{Key: entry.Key, Err: fmt.Errorf("%w: value is not a string", codecErr)}
			t.Log.Warnf("Failed to %s value for key '%s': %v", mode, entry.Key, keyErr.Err)
			summary.Errors = append(summary.Errors, keyErr)
			continue
		}
		if entry.Value == "" {
			summary.Skipped++
			continue
		}

		value, changed, err := rewrite(entry.Key, entry.Value)
		if err != nil {
			t.Log.Warnf("Failed to %s value for key '%s': %v", mode, entry.Key, err)
			summary.Errors = append(summary.Errors, KeyError{Key: entry.Key, Err: err})
			continue
		}
		if !changed {
			summary.Skipped++
			continue
		}

		data.Set(entry.Key, value)
		summary.Changed++
		t.Log.Debugf("Key %q: %sd", entry.Key, mode)
	}

	return summary, nil
}
