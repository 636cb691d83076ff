package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/sealkit/internal/audit"
	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation (encode, decode, seal, unseal)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the local audit log of encode, decode, seal and unseal runs.
Entries record files, secret names and outcomes, never secret values.

Examples:
  sealkit secrets log
  sealkit secrets log -n 10 --reverse
  sealkit secrets log --operation seal --oneline
  sealkit secrets log --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
			Limit:     logLimit,
			Operation: logOperation,
			Reverse:   logReverse,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}
		Logger.Debugf("Read %d of %d entries from %s", len(result.Entries), result.Total, result.LogPath)

		if logJSON {
			entries := result.Entries
			if entries == nil {
				entries = []audit.Entry{}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		if len(result.Entries) == 0 {
			fmt.Print(ui.WarningLine("No audit log entries found %s", ui.Muted.Sprint(result.LogPath)))
			return nil
		}

		for _, e := range result.Entries {
			if logOneline {
				fmt.Println(formatOneline(e))
			} else {
				fmt.Print(formatEntry(e))
			}
		}
		return nil
	},
}

func entryTarget(e audit.Entry) string {
	if e.Secret != "" {
		return e.Secret
	}
	return e.File
}

func formatOneline(e audit.Entry) string {
	return fmt.Sprintf("%s %-7s %-9s %s", e.Timestamp, e.Operation, e.Outcome, entryTarget(e))
}

func formatEntry(e audit.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", ui.Warning.Sprint("entry"), e.ID)
	fmt.Fprintf(&b, "Date:      %s\n", e.Timestamp)
	fmt.Fprintf(&b, "User:      %s\n", e.User)
	fmt.Fprintf(&b, "Operation: %s %s\n", e.Operation, ui.Muted.Sprint(e.Outcome))
	if e.File != "" {
		fmt.Fprintf(&b, "File:      %s\n", ui.Path.Sprint(e.File))
	}
	if e.Secret != "" {
		fmt.Fprintf(&b, "Secret:    %s\n", ui.Highlight.Sprint(e.Secret))
	}
	if e.Output != "" {
		fmt.Fprintf(&b, "Output:    %s\n", ui.Path.Sprint(e.Output))
	}
	if e.Certificate != "" {
		fmt.Fprintf(&b, "Cert:      %s\n", e.Certificate)
	}
	if e.Backend != "" {
		fmt.Fprintf(&b, "Backend:   %s\n", e.Backend)
	}
	if e.Operation == "encode" || e.Operation == "decode" {
		fmt.Fprintf(&b, "Values:    %d changed, %d skipped, %d failed\n", e.Changed, e.Skipped, e.Failed)
	}
	if e.DryRun {
		fmt.Fprintf(&b, "Dry run:   yes\n")
	}
	if e.Error != "" {
		fmt.Fprintf(&b, "Error:     %s\n", ui.Error.Sprint(e.Error))
	}
	b.WriteString("\n")
	return b.String()
}
