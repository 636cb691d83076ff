package cmd

import (
	"context"

	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/workflows"

	"github.com/spf13/cobra"
)

var transcodeDryRun bool

func init() {
	encodeCmd.Flags().BoolVar(&transcodeDryRun, "dry-run", false, "report changes without writing the file")
	decodeCmd.Flags().BoolVar(&transcodeDryRun, "dry-run", false, "report changes without writing the file")
}

func resetTranscodeCommandState() {
	transcodeDryRun = false
}

var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Base64-encode the plaintext values of a Secret's data map",
	Long: `Rewrites the Secret manifest in place, base64-encoding every value in its
data map that is not already base64. Running it twice changes nothing.

Examples:
  sealkit secrets encode secret.yaml
  sealkit secrets encode secret.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscode(cmd, args[0], workflows.Encode, "Encoding", "Encoded")
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode the base64 values of a Secret's data map",
	Long: `Rewrites the Secret manifest in place, decoding every base64 value in its
data map whose decoded content is printable text. Binary values such as
keystores stay encoded.

Examples:
  sealkit secrets decode secret.yaml
  sealkit secrets decode secret.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscode(cmd, args[0], workflows.Decode, "Decoding", "Decoded")
	},
}

type transcodeFunc = func(ctx context.Context, opts workflows.TranscodeOptions) (*workflows.TranscodeResult, error)

func runTranscode(cmd *cobra.Command, file string, run transcodeFunc, doing, done string) error {
	Logger.Infof("Starting %s command", cmd.Name())
	spinner, cleanup := startSpinner(doing+" "+file+"...", Logger)
	defer cleanup()

	result, err := run(cmd.Context(), workflows.TranscodeOptions{
		File:   file,
		DryRun: transcodeDryRun,
		Log:    Logger,
	})
	if err != nil {
		Logger.Debugf("%s failed: %v", cmd.Name(), err)
		spinner.FinalMSG = failureMessage(doing, err)
		return nil
	}

	summary := result.Summary
	var msg string
	switch {
	case summary.Changed == 0:
		msg = ui.SuccessLine("Nothing to change in %s %s", ui.Path.Sprint(file), ui.Muted.Sprintf("%d skipped", summary.Skipped))
	case result.DryRun:
		msg = ui.WarningLine("[dry-run] Would change %d value(s) in %s %s", summary.Changed, ui.Path.Sprint(file), ui.Muted.Sprintf("%d skipped", summary.Skipped))
	default:
		msg = ui.SuccessLine("%s %d value(s) in %s %s", done, summary.Changed, ui.Path.Sprint(file), ui.Muted.Sprintf("%d skipped", summary.Skipped))
	}

	for _, keyErr := range summary.Errors {
		msg += ui.ErrorLine("Key %s: %v", ui.Highlight.Sprint(keyErr.Key), keyErr.Err)
	}
	if len(summary.Errors) > 0 {
		msg += ui.HintLine("%d key(s) were left unchanged", len(summary.Errors))
	}

	spinner.FinalMSG = msg
	return nil
}
