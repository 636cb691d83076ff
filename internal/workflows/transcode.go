package workflows

import (
	"context"

	"github.com/PolarWolf314/sealkit/internal/audit"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/PolarWolf314/sealkit/internal/transcode"
)

// TranscodeOptions configures the encode and decode workflows.
type TranscodeOptions struct {
	// File is the Secret manifest to rewrite in place.
	File string

	// DryRun reports what would change without writing the file.
	DryRun bool

	Log logger.Logger
}

// TranscodeResult contains the outcome of an encode or decode run.
type TranscodeResult struct {
	File    string
	Mode    transcode.Mode
	Summary transcode.Summary

	// Written is true when the file was rewritten. Nothing is written when no
	// value changed or on a dry run.
	Written bool
	DryRun  bool
}

// Encode base64-encodes every plaintext value in the Secret's data map.
//
// Returns ErrIO if the file cannot be read or written, ErrParse if it is not
// YAML and ErrNotASecret if its kind is not Secret. Per-key failures are
// reported in the summary.
func Encode(ctx context.Context, opts TranscodeOptions) (*TranscodeResult, error) {
	return runTranscode(ctx, opts, transcode.ModeEncode)
}

// Decode decodes every value in the Secret's data map that is base64 of
// printable text. Binary payloads stay encoded.
func Decode(ctx context.Context, opts TranscodeOptions) (*TranscodeResult, error) {
	return runTranscode(ctx, opts, transcode.ModeDecode)
}

func runTranscode(ctx context.Context, opts TranscodeOptions, mode transcode.Mode) (*TranscodeResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	_, doc, err := loadManifest(opts.File)
	if err != nil {
		return nil, err
	}

	summary, err := transcode.New(opts.Log).Run(doc, mode)
	if err != nil {
		return nil, err
	}

	result := &TranscodeResult{
		File:    opts.File,
		Mode:    mode,
		Summary: summary,
		DryRun:  opts.DryRun,
	}

	if summary.Changed > 0 && !opts.DryRun {
		out, err := doc.Dump()
		if err != nil {
			return nil, err
		}
		if err := writeManifest(opts.File, out); err != nil {
			return nil, err
		}
		result.Written = true
	}
	opts.Log.Debugf("%s %s: %d changed, %d skipped, %d failed", mode, opts.File, summary.Changed, summary.Skipped, len(summary.Errors))

	entry := audit.NewEntry(mode.String())
	entry.File = opts.File
	entry.Outcome = "succeeded"
	entry.Changed = summary.Changed
	entry.Skipped = summary.Skipped
	entry.Failed = len(summary.Errors)
	entry.DryRun = opts.DryRun
	audit.Log(entry)

	return result, nil
}
