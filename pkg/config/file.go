package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gatewayz"
	}
	return filepath.Join(home, ".config", "gatewayz")
}

// ConfigPath returns the default YAML settings path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load builds Settings from defaults, the YAML file at path (or the default
// path when empty), .env files and the environment, in that order of
// increasing precedence. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Defaults()

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}
	if err := LoadFile(s, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := ApplyEnv(s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads YAML settings from path into s. ${VAR} references in
// api_key are expanded.
func LoadFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return err
	}
	s.APIKey = expandEnvVar(s.APIKey)
	return nil
}

// LoadDotEnv loads the first .env file found in the working directory or the
// config directory. Variables already set in the environment win.
func LoadDotEnv() error {
	for _, path := range dotEnvPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

func dotEnvPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	paths = append(paths, filepath.Join(ConfigDir(), ".env"))
	return paths
}

var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVar expands ${VAR} references. A bare $ is kept as is.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}
	return envRefPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envRefPattern.FindStringSubmatch(match)[1])
	})
}
