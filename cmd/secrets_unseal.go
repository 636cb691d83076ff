package cmd

import (
	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	unsealOutput     string
	unsealBackend    string
	unsealDecode     bool
	unsealKubeconfig string
)

func init() {
	unsealCmd.Flags().StringVarP(&unsealOutput, "output", "o", "", "write the Secret here instead of <file>-unsealed.yaml")
	unsealCmd.Flags().StringVar(&unsealBackend, "backend", string(workflows.BackendKubectl), "how to read the Secret: kubectl or api")
	unsealCmd.Flags().BoolVar(&unsealDecode, "decode", false, "also decode the Secret's base64 values")
	unsealCmd.Flags().StringVar(&unsealKubeconfig, "kubeconfig", "", "kubeconfig for the api backend")
}

func resetUnsealCommandState() {
	unsealOutput = ""
	unsealBackend = string(workflows.BackendKubectl)
	unsealDecode = false
	unsealKubeconfig = ""
}

var unsealCmd = &cobra.Command{
	Use:   "unseal <file>",
	Short: "Fetch the Secret behind a SealedSecret from the cluster",
	Long: `Reads the name and namespace from a SealedSecret and fetches the Secret the
controller created from it. The result is written next to the input as
<name>-unsealed<ext>. This needs read access to Secrets in that namespace.

The kubectl backend runs "kubectl get secret"; the api backend talks to the
cluster directly using in-cluster credentials or a kubeconfig.

Examples:
  sealkit secrets unseal sealed.yaml
  sealkit secrets unseal sealed.yaml --decode
  sealkit secrets unseal sealed.yaml --backend api --kubeconfig ~/.kube/prod`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		Logger.Infof("Starting unseal command")

		backend, err := workflows.ParseBackend(unsealBackend)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		spinner, cleanup := startSpinner("Fetching secret for "+file+"...", Logger)
		defer cleanup()

		result, err := workflows.Unseal(cmd.Context(), workflows.UnsealOptions{
			File:       file,
			Output:     unsealOutput,
			Backend:    backend,
			Decode:     unsealDecode,
			Kubeconfig: unsealKubeconfig,
			Log:        Logger,
		})
		if err != nil {
			Logger.Debugf("unseal failed: %v", err)
			spinner.FinalMSG = failureMessage("Unsealing", err)
			return nil
		}

		secret := result.Metadata.Namespace + "/" + result.Metadata.Name
		msg := ui.SuccessLine("Fetched secret %s", ui.Highlight.Sprint(secret)) +
			"Created: " + ui.Path.Sprint(result.OutputFile) + "\n"
		if result.Decoded != nil {
			msg += ui.HintLine("Decoded %d value(s), %d left encoded", result.Decoded.Changed, result.Decoded.Skipped+len(result.Decoded.Errors))
		}
		msg += ui.WarningLine("This file contains plaintext credentials. Do not commit it")
		spinner.FinalMSG = msg
		return nil
	},
}
