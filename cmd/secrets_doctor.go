package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that sealing and unsealing can work",
	Long: `Runs health checks and reports issues:
  - the config file parses
  - kubeseal is installed and runs
  - kubectl is installed and runs
  - a certificate folder is configured and holds certificates
  - a certificate is selected

Exit codes:
  0 - All checks passed
  1 - Warnings found
  2 - Errors found

Use --json for machine-readable output.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	spinner, cleanup := startSpinner("Running health checks...", Logger)

	result, err := workflows.Doctor(cmd.Context(), workflows.DoctorOptions{Log: Logger})
	if err != nil {
		spinner.FinalMSG = failureMessage("Health checks", err)
		cleanup()
		return nil
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status, check.Message)
	}

	if doctorJSONOutput {
		cleanup()
		if err := outputDoctorJSON(result); err != nil {
			return err
		}
	} else {
		switch {
		case result.Summary.Errors > 0:
			spinner.FinalMSG = ui.ErrorLine("Health checks completed with errors")
		case result.Summary.Warnings > 0:
			spinner.FinalMSG = ui.WarningLine("Health checks completed with warnings")
		default:
			spinner.FinalMSG = ui.SuccessLine("Health checks completed")
		}
		cleanup()
		printDoctorResults(result)
	}

	if result.Summary.Errors > 0 {
		doctorExitFunc(2)
	} else if result.Summary.Warnings > 0 {
		doctorExitFunc(1)
	}
	return nil
}

func outputDoctorJSON(result *workflows.DoctorResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printDoctorResults(result *workflows.DoctorResult) {
	fmt.Println()
	for _, check := range result.Checks {
		var statusIcon string
		switch check.Status {
		case workflows.CheckPass:
			statusIcon = ui.Success.Sprint(ui.SuccessSymbol)
		case workflows.CheckWarning:
			statusIcon = ui.Warning.Sprint(ui.WarningSymbol)
		case workflows.CheckError:
			statusIcon = ui.Error.Sprint(ui.ErrorSymbol)
		}
		fmt.Printf("%s %s: %s\n", statusIcon, check.Name, check.Message)
	}

	fmt.Println()
	fmt.Printf("Summary: %d passed", result.Summary.Passed)
	if result.Summary.Warnings > 0 {
		fmt.Printf(", %s", ui.Warning.Sprintf("%d warning(s)", result.Summary.Warnings))
	}
	if result.Summary.Errors > 0 {
		fmt.Printf(", %s", ui.Error.Sprintf("%d error(s)", result.Summary.Errors))
	}
	fmt.Println()

	if len(result.Suggestions) > 0 {
		fmt.Println()
		fmt.Println("Suggestions:")
		for _, suggestion := range result.Suggestions {
			fmt.Printf("  %s %s\n", ui.Info.Sprint(ui.InfoSymbol), suggestion)
		}
	}
}
