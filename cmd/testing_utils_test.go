package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/PolarWolf314/sealkit/internal/configs"
	"github.com/spf13/cobra"
)

const testSecret = `apiVersion: v1
kind: Secret
metadata:
  name: db
  namespace: prod
type: Opaque
data:
  username: admin
  password: s3cret
`

const testSealedSecret = `apiVersion: bitnami.com/v1alpha1
kind: SealedSecret
metadata:
  name: db
  namespace: prod
spec:
  encryptedData:
    password: AgBy3i4OJSWK
`

var testRoot = func() *cobra.Command {
	root := &cobra.Command{Use: "sealkit", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(SecretsCmd)
	root.AddCommand(ConfigCmd)
	return root
}()

// setupTestEnvironment isolates the config dir, disables color and returns a
// temp working dir for manifests.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	original := configs.UserSealkitSettings
	configs.UseConfigDir(filepath.Join(t.TempDir(), "sealkit"))
	t.Cleanup(func() {
		configs.UserSealkitSettings = original
		ResetGlobalState()
		ResetConfigState()
	})

	return t.TempDir()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	runErr := fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, runErr
}

// execute runs the CLI with args without resetting flag state.
func execute(args ...string) (string, error) {
	testRoot.SetArgs(args)
	return captureOutput(testRoot.Execute)
}

// runCLI resets all command state and runs the CLI with args.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	ResetConfigState()
	return execute(args...)
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

// writeFakeTool writes an executable shell script standing in for kubeseal
// or kubectl.
func writeFakeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700); err != nil {
		t.Fatalf("Failed to write fake %s: %v", name, err)
	}
	return path
}

// configureCertificate sets up a certificate folder with prod.pem selected.
func configureCertificate(t *testing.T, dir string, tools configs.Tools) {
	t.Helper()
	folder := filepath.Join(dir, "certs")
	if err := os.Mkdir(folder, 0700); err != nil {
		t.Fatalf("Failed to create cert folder: %v", err)
	}
	writeTestFile(t, folder, "prod.pem", "-----BEGIN CERTIFICATE-----\n")

	config := configs.DefaultConfig()
	if tools.Kubeseal != "" {
		config.Tools.Kubeseal = tools.Kubeseal
	}
	if tools.Kubectl != "" {
		config.Tools.Kubectl = tools.Kubectl
	}
	if err := config.SetCertificateFolder(folder); err != nil {
		t.Fatalf("SetCertificateFolder failed: %v", err)
	}
	if err := config.SelectCertificate("prod.pem"); err != nil {
		t.Fatalf("SelectCertificate failed: %v", err)
	}
	if err := configs.SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
}
