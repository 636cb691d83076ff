package cmd

import (
	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	sealOutput      string
	sealCertificate string
)

func init() {
	sealCmd.Flags().StringVarP(&sealOutput, "output", "o", "", "write the SealedSecret here instead of <file>-sealed.yaml")
	sealCmd.Flags().StringVar(&sealCertificate, "cert", "", "seal with this certificate instead of the selected one")
}

func resetSealCommandState() {
	sealOutput = ""
	sealCertificate = ""
}

var sealCmd = &cobra.Command{
	Use:   "seal <file>",
	Short: "Seal a Secret into a SealedSecret with kubeseal",
	Long: `Runs kubeseal with the selected public certificate, so no cluster access
is needed. The SealedSecret is written next to the input as <name>-sealed<ext>.

Select a certificate first:
  sealkit config set-cert-folder ~/certs
  sealkit config select-cert prod.pem

Examples:
  sealkit secrets seal secret.yaml
  sealkit secrets seal secret.yaml -o sealed/secret.yaml --cert staging.pem

Press Ctrl-C to cancel a running kubeseal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		Logger.Infof("Starting seal command")
		spinner, cleanup := startSpinner("Sealing "+file+"...", Logger)
		defer cleanup()

		result, err := workflows.Seal(cmd.Context(), workflows.SealOptions{
			File:        file,
			Output:      sealOutput,
			Certificate: sealCertificate,
			Log:         Logger,
		})
		if result != nil {
			warnTruncated(Logger, result.Process)
		}
		if err != nil {
			Logger.Debugf("seal failed: %v", err)
			spinner.FinalMSG = failureMessage("Sealing", err)
			return nil
		}

		spinner.FinalMSG = ui.SuccessLine("Sealed %s with %s", ui.Path.Sprint(file), ui.Highlight.Sprint(result.Certificate)) +
			"Created: " + ui.Path.Sprint(result.OutputFile) + "\n" +
			ui.HintLine("The SealedSecret is safe to commit to version control")
		return nil
	},
}
