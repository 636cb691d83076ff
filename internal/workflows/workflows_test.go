package workflows

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/PolarWolf314/sealkit/internal/configs"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/stretchr/testify/require"
)

const plainSecret = `apiVersion: v1
kind: Secret
metadata:
  name: db
  namespace: prod
type: Opaque
data:
  username: admin
  password: s3cret
`

const sealedSecret = `apiVersion: bitnami.com/v1alpha1
kind: SealedSecret
metadata:
  name: db
  namespace: prod
spec:
  encryptedData:
    password: AgBy3i4OJSWK+PiTySYZZA9rO43cGDEq
`

// testEnv is an isolated config dir plus a working dir for manifests.
type testEnv struct {
	t      *testing.T
	dir    string
	config *configs.Config
	log    logger.Logger
	out    *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	original := configs.UserSealkitSettings
	configs.UseConfigDir(filepath.Join(t.TempDir(), "sealkit"))
	t.Cleanup(func() { configs.UserSealkitSettings = original })

	var out bytes.Buffer
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		config: configs.DefaultConfig(),
		log:    logger.Logger{Out: &out, Err: &out},
		out:    &out,
	}
}

func (e *testEnv) save() {
	e.t.Helper()
	require.NoError(e.t, configs.SaveConfig(e.config))
}

func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func (e *testEnv) readFile(path string) string {
	e.t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(e.t, err)
	return string(content)
}

// withCertificate configures a certificate folder holding prod.pem.
func (e *testEnv) withCertificate() string {
	e.t.Helper()
	folder := filepath.Join(e.dir, "certs")
	require.NoError(e.t, os.Mkdir(folder, 0700))
	require.NoError(e.t, os.WriteFile(filepath.Join(folder, "prod.pem"), []byte("-----BEGIN CERTIFICATE-----\n"), 0600))
	require.NoError(e.t, e.config.SetCertificateFolder(folder))
	require.NoError(e.t, e.config.SelectCertificate("prod.pem"))
	e.save()
	return filepath.Join(folder, "prod.pem")
}

// fakeTool writes an executable script that records its argv to
// <name>.args and then runs body.
func (e *testEnv) fakeTool(name, body string) string {
	e.t.Helper()
	if runtime.GOOS == "windows" {
		e.t.Skip("fake tools are shell scripts")
	}
	bin := filepath.Join(e.dir, "bin")
	require.NoError(e.t, os.MkdirAll(bin, 0700))
	path := filepath.Join(bin, name)
	script := "#!/bin/sh\necho \"$@\" >> \"" + path + ".args\"\n" + body + "\n"
	require.NoError(e.t, os.WriteFile(path, []byte(script), 0700))
	return path
}

func (e *testEnv) toolArgs(tool string) string {
	e.t.Helper()
	content, err := os.ReadFile(tool + ".args")
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(e.t, err)
	return string(content)
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func (e *testEnv) configPath() string {
	return configs.UserSealkitSettings.ConfigPath
}
