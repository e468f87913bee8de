package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, read from a config.toml
// next to the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Auth   AuthConfig   `toml:"auth"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds data directory settings.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	// ReferencePath optionally points at a TOML file overriding the
	// built-in route hierarchy and material catalog.
	ReferencePath string `toml:"reference_path"`
}

// AuthConfig holds the admin unlock password.
type AuthConfig struct {
	AdminPassword string `toml:"admin_password"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20410,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Auth: AuthConfig{
			AdminPassword: "cgsup",
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory,
// falling back to defaults when the file is missing. Environment
// variables override the file for deployment and test setups.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("SUPRIPLAN_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SUPRIPLAN_ADMIN_PASSWORD"); v != "" {
		config.Auth.AdminPassword = v
	}
	if v := os.Getenv("SUPRIPLAN_REFERENCE_PATH"); v != "" {
		config.Data.ReferencePath = v
	}
}

// EnsureDataDir creates the data directory next to the executable and
// returns its absolute path.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
