package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/sealkit/internal/configs"
	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/ui"

	"github.com/spf13/cobra"
)

var listCertsJSON bool

func init() {
	listCertsCmd.Flags().BoolVar(&listCertsJSON, "json", false, "output in JSON format")
}

func resetListCertsState() {
	listCertsJSON = false
}

var setCertFolderCmd = &cobra.Command{
	Use:   "set-cert-folder <dir>",
	Short: "Set the folder holding sealing certificates",
	Long: `Sets the folder sealkit looks in for public certificates (*.pem, *.crt,
*.cert). Changing the folder clears the selected certificate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting set-cert-folder command")

		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if err := config.SetCertificateFolder(args[0]); err != nil {
			fmt.Print(ui.ErrorLine("Cannot use %s as the certificate folder: %v", ui.Path.Sprint(args[0]), err))
			return nil
		}
		if err := configs.SaveConfig(config); err != nil {
			return ConfigLogger.ErrorfAndReturn("%v", err)
		}
		ConfigLogger.Debugf("Saved certificate folder %s to %s", config.Certificates.Folder, configs.UserSealkitSettings.ConfigPath)

		certs, err := configs.ListCertificates(config.Certificates.Folder)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("%v", err)
		}

		fmt.Print(ui.SuccessLine("Certificate folder set to %s", ui.Path.Sprint(config.Certificates.Folder)))
		if len(certs) == 0 {
			fmt.Print(ui.WarningLine("No .pem, .crt or .cert files found in it"))
			return nil
		}
		fmt.Print(ui.HintLine("Found %d certificate(s). Run %s to pick one", len(certs), ui.Code.Sprint("sealkit config select-cert <name>")))
		return nil
	},
}

var selectCertCmd = &cobra.Command{
	Use:   "select-cert <name>",
	Short: "Select the certificate used for sealing",
	Long: `Selects a certificate from the configured folder by file name. Use
"sealkit config list-certs" to see the choices.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting select-cert command")

		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if err := config.SelectCertificate(args[0]); err != nil {
			fmt.Print(failureMessage("Selecting certificate", err))
			return nil
		}
		if err := configs.SaveConfig(config); err != nil {
			return ConfigLogger.ErrorfAndReturn("%v", err)
		}

		fmt.Print(ui.SuccessLine("Sealing with %s", ui.Highlight.Sprint(config.Certificates.Active)))
		return nil
	},
}

type certificateListing struct {
	Folder       string   `json:"folder"`
	Active       string   `json:"active"`
	Certificates []string `json:"certificates"`
}

var listCertsCmd = &cobra.Command{
	Use:   "list-certs",
	Short: "List certificates in the configured folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting list-certs command")

		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if config.Certificates.Folder == "" {
			fmt.Print(failureMessage("Listing certificates", kerrors.ErrCertFolderNotConfigured))
			return nil
		}

		certs, err := configs.ListCertificates(config.Certificates.Folder)
		if err != nil {
			fmt.Print(failureMessage("Listing certificates", err))
			return nil
		}

		if listCertsJSON {
			if certs == nil {
				certs = []string{}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(certificateListing{
				Folder:       config.Certificates.Folder,
				Active:       config.Certificates.Active,
				Certificates: certs,
			})
		}

		fmt.Printf("Certificates in %s:\n", ui.Path.Sprint(config.Certificates.Folder))
		if len(certs) == 0 {
			fmt.Println("  " + ui.Muted.Sprint("none"))
			return nil
		}
		for _, cert := range certs {
			if cert == config.Certificates.Active {
				fmt.Printf("  %s %s %s\n", ui.Success.Sprint("*"), cert, ui.Muted.Sprint("selected"))
			} else {
				fmt.Printf("    %s\n", cert)
			}
		}
		return nil
	},
}
