package configs

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/sealkit/internal/kube"
)

// DefaultTimeoutSeconds bounds every external tool invocation.
const DefaultTimeoutSeconds = 30

type Config struct {
	Certificates Certificates `toml:"certificates"`
	Tools        Tools        `toml:"tools"`
}

type Certificates struct {
	Folder string `toml:"folder" json:"folder"`
	Active string `toml:"active" json:"active"`
}

type Tools struct {
	Kubeseal       string `toml:"kubeseal" json:"kubeseal"`
	Kubectl        string `toml:"kubectl" json:"kubectl"`
	Kubeconfig     string `toml:"kubeconfig,omitempty" json:"kubeconfig,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Tools: Tools{
			Kubeseal:       kube.DefaultKubesealBinary,
			Kubectl:        kube.DefaultKubectlBinary,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Timeout returns the tool timeout, falling back to the default for
// missing or non-positive values.
func (t Tools) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// LoadConfig loads the user configuration from the config file.
// A missing file yields DefaultConfig.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()
	configPath := UserSealkitSettings.ConfigPath

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	// Blank entries in the file shouldn't disable the tools.
	if config.Tools.Kubeseal == "" {
		config.Tools.Kubeseal = kube.DefaultKubesealBinary
	}
	if config.Tools.Kubectl == "" {
		config.Tools.Kubectl = kube.DefaultKubectlBinary
	}

	return config, nil
}

// SaveConfig saves the user configuration to the config file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(UserSealkitSettings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
