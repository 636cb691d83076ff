package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/sealkit/internal/configs"
	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/invoke"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	CheckPass CheckStatus = iota
	CheckWarning
	CheckError
)

func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct {
	Log logger.Logger
}

// Doctor checks that sealkit can do its job:
//   - the config file parses
//   - kubeseal is installed and runs
//   - kubectl is installed and runs
//   - a certificate folder is configured and contains certificates
//   - an active certificate is selected and exists
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	config, configCheck := checkConfig()
	inv := invoke.New(opts.Log)

	results := []CheckResult{
		configCheck,
		checkTool(ctx, inv, "kubeseal", config.Tools.Kubeseal, []string{"--version"},
			"Install kubeseal: https://github.com/bitnami-labs/sealed-secrets#kubeseal"),
		checkTool(ctx, inv, "kubectl", config.Tools.Kubectl, []string{"version", "--client"},
			"Install kubectl: https://kubernetes.io/docs/tasks/tools/"),
		checkCertificateFolder(config),
		checkActiveCertificate(config),
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, result := range results {
		if result.Suggestion != "" && result.Status != CheckPass && !seen[result.Suggestion] {
			suggestions = append(suggestions, result.Suggestion)
			seen[result.Suggestion] = true
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     summarizeChecks(results),
		Suggestions: suggestions,
	}, nil
}

// checkConfig loads the config, falling back to defaults so the remaining
// checks still run.
func checkConfig() (*configs.Config, CheckResult) {
	config, err := configs.LoadConfig()
	if err != nil {
		return configs.DefaultConfig(), CheckResult{
			Name:       "Configuration",
			Status:     CheckError,
			Message:    fmt.Sprintf("Failed to parse config: %v", err),
			Suggestion: "Check " + configs.UserSealkitSettings.ConfigPath + " for syntax errors",
		}
	}
	return config, CheckResult{
		Name:    "Configuration",
		Status:  CheckPass,
		Message: "Configuration valid",
	}
}

func checkTool(ctx context.Context, inv *invoke.Invoker, name, binary string, versionArgs []string, install string) CheckResult {
	path, err := invoke.FindBinary(binary)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%s not found on PATH", binary),
			Suggestion: install,
		}
	}

	if err := inv.Probe(ctx, path, versionArgs...); err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%s is installed but failed to run: %v", path, err),
			Suggestion: install,
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%s is installed (%s)", name, path),
	}
}

func checkCertificateFolder(config *configs.Config) CheckResult {
	const name = "Certificate folder"

	if config.Certificates.Folder == "" {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    "No certificate folder configured",
			Suggestion: "Run 'sealkit config set-cert-folder <dir>'",
		}
	}

	certs, err := configs.ListCertificates(config.Certificates.Folder)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: "Run 'sealkit config set-cert-folder <dir>' with an existing directory",
		}
	}
	if len(certs) == 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("No .pem, .crt or .cert files in %s", config.Certificates.Folder),
			Suggestion: "Fetch a certificate with 'kubeseal --fetch-cert > cert.pem' into the folder",
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%d certificate(s) in %s", len(certs), config.Certificates.Folder),
	}
}

func checkActiveCertificate(config *configs.Config) CheckResult {
	const name = "Active certificate"

	path, err := config.CurrentCertificatePath()
	switch {
	case err == nil:
		return CheckResult{Name: name, Status: CheckPass, Message: path}
	case errors.Is(err, kerrors.ErrCertFolderNotConfigured):
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "Skipped: no certificate folder configured",
			Suggestion: "Run 'sealkit config set-cert-folder <dir>'",
		}
	case errors.Is(err, kerrors.ErrNoCertificateSelected):
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    "No certificate selected",
			Suggestion: "Run 'sealkit config select-cert <name>'",
		}
	default:
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: "Run 'sealkit config select-cert <name>' to pick an existing certificate",
		}
	}
}

func summarizeChecks(results []CheckResult) DoctorSummary {
	var summary DoctorSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
	}
	return summary
}
