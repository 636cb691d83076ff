package cmd

import (
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	SecretsCmd = &cobra.Command{
		Use:   "secrets",
		Short: "Encode, decode, seal and unseal Kubernetes Secret manifests",
		Long: `Works on Kubernetes Secret and SealedSecret manifests.

  encode   base64-encode plaintext values in a Secret's data map
  decode   decode base64 values that hold printable text
  seal     turn a Secret into a SealedSecret with kubeseal
  unseal   fetch the live Secret behind a SealedSecret from the cluster
  doctor   check that kubeseal, kubectl and a certificate are set up
  log      show the audit log`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing secrets command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SecretsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SecretsCmd.AddCommand(encodeCmd)
	SecretsCmd.AddCommand(decodeCmd)
	SecretsCmd.AddCommand(sealCmd)
	SecretsCmd.AddCommand(unsealCmd)
	SecretsCmd.AddCommand(doctorCmd)
	SecretsCmd.AddCommand(logCmd)
}

// GetSecretsCmd returns the SecretsCmd for testing.
func GetSecretsCmd() *cobra.Command {
	return SecretsCmd
}

// ResetGlobalState resets all secrets command flags to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetTranscodeCommandState()
	resetSealCommandState()
	resetUnsealCommandState()
	resetDoctorCommandState()
	resetLogCommandState()
	resetCobraFlagState(SecretsCmd)
}

// resetCobraFlagState marks every flag of cmd and its children unchanged.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
