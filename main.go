package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/sealkit/cmd"
	"github.com/PolarWolf314/sealkit/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sealkit",
	Short: "sealkit - work with Kubernetes Secrets and SealedSecrets",
	Long: `sealkit toggles the values of Kubernetes Secret manifests between plaintext
and base64, seals them with kubeseal, and fetches the Secret behind a
SealedSecret back from the cluster.

Usage:
  sealkit <command> [flags]

Available Commands:
  secrets    Encode, decode, seal and unseal manifests
  config     Manage the sealing certificate and tool settings

Run 'sealkit help <command>' for more details on a specific command.
`,
	SilenceUsage: true,
	Run: func(c *cobra.Command, args []string) {
		if ui.ColorEnabled() {
			figure.NewColorFigure("sealkit", "small", "green", true).Print()
		} else {
			figure.NewFigure("sealkit", "small", true).Print()
		}
		fmt.Println()
		fmt.Println("Run 'sealkit --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.GetSecretsCmd())
	rootCmd.AddCommand(cmd.GetConfigCmd())
}

func main() {
	// Ctrl-C cancels whatever tool is running; workflows stop it and report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
