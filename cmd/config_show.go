package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/sealkit/internal/configs"
	"github.com/PolarWolf314/sealkit/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

func resetConfigShowState() {
	configShowJSON = false
}

type configView struct {
	Path         string               `json:"path"`
	Certificates configs.Certificates `json:"certificates"`
	Tools        configs.Tools        `json:"tools"`
	AuditLog     string               `json:"audit_log"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the effective configuration, with defaults filled in.

Examples:
  sealkit config show
  sealkit config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		view := configView{
			Path:         configs.UserSealkitSettings.ConfigPath,
			Certificates: config.Certificates,
			Tools:        config.Tools,
			AuditLog:     configs.UserSealkitSettings.AuditLogPath,
		}

		if configShowJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(view)
		}

		fmt.Printf("Config file: %s\n\n", ui.Path.Sprint(view.Path))
		fmt.Println("Certificates:")
		fmt.Printf("  Folder:   %s\n", valueOrUnset(view.Certificates.Folder))
		fmt.Printf("  Selected: %s\n", valueOrUnset(view.Certificates.Active))
		fmt.Println()
		fmt.Println("Tools:")
		fmt.Printf("  kubeseal: %s\n", view.Tools.Kubeseal)
		fmt.Printf("  kubectl:  %s\n", view.Tools.Kubectl)
		if view.Tools.Kubeconfig != "" {
			fmt.Printf("  kubeconfig: %s\n", ui.Path.Sprint(view.Tools.Kubeconfig))
		}
		fmt.Printf("  timeout:  %s\n", view.Tools.Timeout())
		fmt.Println()
		fmt.Printf("Audit log: %s\n", ui.Path.Sprint(view.AuditLog))
		return nil
	},
}

func valueOrUnset(value string) string {
	if value == "" {
		return ui.Muted.Sprint("not set")
	}
	return ui.Highlight.Sprint(value)
}
