package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDerivedPath(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		suffix   string
		expected string
	}{
		{"YAMLFile", "secret.yaml", SealedSuffix, "secret-sealed.yaml"},
		{"NestedDir", filepath.Join("k8s", "prod", "db.yml"), UnsealedSuffix, filepath.Join("k8s", "prod", "db-unsealed.yml")},
		{"NoExtension", "secret", SealedSuffix, "secret-sealed"},
		{"DottedName", "my.app.secret.yaml", SealedSuffix, "my.app.secret-sealed.yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := DerivedPath(tc.source, tc.suffix)
			if result != tc.expected {
				t.Errorf("DerivedPath(%q, %q) = %q, expected %q", tc.source, tc.suffix, result, tc.expected)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cert.pem")
	if err := os.WriteFile(file, []byte("cert"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("expected %s to exist", file)
	}
	if FileExists(dir) {
		t.Errorf("expected directory %s not to count as a file", dir)
	}
	if FileExists(filepath.Join(dir, "missing.pem")) {
		t.Error("expected missing file not to exist")
	}
}

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Skipf("current user unavailable: %v", err)
	}
	if username == "" {
		t.Error("expected a non-empty username")
	}
}
