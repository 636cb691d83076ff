// Package workflows provides high-level orchestration for sealkit commands.
//
// Each workflow implements one command's behavior independent of CLI
// concerns: the cmd package parses flags, calls a workflow, and formats the
// result. Workflows load configuration, read and validate manifests, run the
// external tools and record audit entries.
//
//   - Encode, Decode: toggle a Secret's data values in place
//   - Seal: run kubeseal with the active certificate
//   - Unseal: fetch the live Secret backing a SealedSecret
//   - Doctor: check tools and certificate configuration
//   - Log: read the audit trail
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors, so the
// CLI can choose messages with errors.Is:
//
//	result, err := workflows.Unseal(ctx, opts)
//	if errors.Is(err, kerrors.ErrCancelled) {
//	    // report softly
//	}
//
// Seal and Unseal also return their partial result on a tool failure so the
// captured output can be shown.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Cancelling it stops any running tool.
package workflows
