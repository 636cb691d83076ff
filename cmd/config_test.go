package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/sealkit/internal/configs"
)

func TestConfigCertificateCommands(t *testing.T) {
	dir := setupTestEnvironment(t)
	folder := filepath.Join(dir, "certs")
	if err := os.Mkdir(folder, 0700); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	writeTestFile(t, folder, "prod.pem", "cert")
	writeTestFile(t, folder, "staging.crt", "cert")
	writeTestFile(t, folder, "notes.txt", "not a cert")

	output, err := runCLI(t, "config", "set-cert-folder", folder)
	if err != nil {
		t.Fatalf("set-cert-folder failed: %v", err)
	}
	if !strings.Contains(output, "Found 2 certificate(s)") {
		t.Errorf("Expected certificate count, got: %s", output)
	}

	output, err = runCLI(t, "config", "select-cert", "prod.pem")
	if err != nil {
		t.Fatalf("select-cert failed: %v", err)
	}
	if !strings.Contains(output, "✓ Sealing with 'prod.pem'") {
		t.Errorf("Expected selection message, got: %s", output)
	}

	output, err = runCLI(t, "config", "list-certs")
	if err != nil {
		t.Fatalf("list-certs failed: %v", err)
	}
	if !strings.Contains(output, "* prod.pem (selected)") || !strings.Contains(output, "staging.crt") {
		t.Errorf("Unexpected listing: %s", output)
	}
	if strings.Contains(output, "notes.txt") {
		t.Errorf("Non-certificate file listed: %s", output)
	}

	output, err = runCLI(t, "config", "list-certs", "--json")
	if err != nil {
		t.Fatalf("list-certs --json failed: %v", err)
	}
	var listing certificateListing
	if err := json.Unmarshal([]byte(output), &listing); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, output)
	}
	if listing.Active != "prod.pem" || len(listing.Certificates) != 2 {
		t.Errorf("Unexpected listing: %+v", listing)
	}

	config, err := configs.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Certificates.Active != "prod.pem" {
		t.Errorf("Expected prod.pem to be saved, got %q", config.Certificates.Active)
	}
}

func TestSelectCertCommand_Errors(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "select-cert", "prod.pem")
	if err != nil {
		t.Fatalf("select-cert returned error: %v", err)
	}
	if !strings.Contains(output, "✗ Selecting certificate failed") || !strings.Contains(output, "set-cert-folder") {
		t.Errorf("Expected folder hint, got: %s", output)
	}

	if _, err := runCLI(t, "config", "select-cert"); err == nil {
		t.Error("Expected an error when no name is given")
	}
}

func TestSetCertFolderCommand_NotADirectory(t *testing.T) {
	dir := setupTestEnvironment(t)
	file := writeTestFile(t, dir, "file.pem", "cert")

	output, err := runCLI(t, "config", "set-cert-folder", file)
	if err != nil {
		t.Fatalf("set-cert-folder returned error: %v", err)
	}
	if !strings.Contains(output, "✗ Cannot use") {
		t.Errorf("Expected an error line, got: %s", output)
	}
}

func TestListCertsCommand_NoFolder(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "list-certs")
	if err != nil {
		t.Fatalf("list-certs returned error: %v", err)
	}
	if !strings.Contains(output, "✗ Listing certificates failed") {
		t.Errorf("Expected failure line, got: %s", output)
	}
}

func TestConfigShowCommand_JSON(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var view configView
	if err := json.Unmarshal([]byte(output), &view); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, output)
	}
	if view.Tools.Kubeseal != "kubeseal" || view.Tools.Kubectl != "kubectl" {
		t.Errorf("Expected default tools, got %+v", view.Tools)
	}
	if view.Path != configs.UserSealkitSettings.ConfigPath {
		t.Errorf("Expected path %q, got %q", configs.UserSealkitSettings.ConfigPath, view.Path)
	}
}

func TestConfigShowCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(output, "Folder:   (not set)") || !strings.Contains(output, "timeout:  30s") {
		t.Errorf("Unexpected output: %s", output)
	}
}
