package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/sealkit/internal/utils"
)

type UserSettings struct {
	ConfigDir    string
	ConfigPath   string
	AuditLogPath string
	Username     string
}

var UserSealkitSettings *UserSettings

func init() {
	// os.UserConfigDir honours XDG_CONFIG_HOME on Linux.
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = "unknown"
	}

	UserSealkitSettings = newUserSettings(filepath.Join(configDir, "sealkit"), username)
}

func newUserSettings(dir, username string) *UserSettings {
	return &UserSettings{
		ConfigDir:    dir,
		ConfigPath:   filepath.Join(dir, "config.toml"),
		AuditLogPath: filepath.Join(dir, "audit.jsonl"),
		Username:     username,
	}
}

// UseConfigDir points all settings at dir. Used by tests and by --config-dir.
func UseConfigDir(dir string) {
	UserSealkitSettings = newUserSettings(dir, UserSealkitSettings.Username)
}
