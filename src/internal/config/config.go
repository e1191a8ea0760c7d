package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hostsctl/hostsctl/src/internal/log"
)

// DefaultConfigPath returns <user config dir>/hostsctl/hostsctl.toml,
// falling back to the working directory when no config dir is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(dir, configDirName, configFileName)
}

// LoadConfig reads the configuration at configPath. A missing file is not an
// error: the defaults are returned, bound to that path.
func LoadConfig(configPath string) (*Config, error) {
	configFile, err := absConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("Configuration file not found, using defaults: %s", configFile)
		return DefaultConfigAt(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d", row, col)
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.fillDefaults()
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Hosts file path: %s", config.GetHostsPath())

	return &config, nil
}

// DefaultConfigAt returns the default configuration bound to configPath,
// without reading it. WriteConfig then creates that file.
func DefaultConfigAt(configPath string) (*Config, error) {
	configFile, err := absConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg._absConfigFilePath = configFile
	return cfg, nil
}

func absConfigPath(configPath string) (string, error) {
	configFile := filepath.Clean(configPath)
	if filepath.IsAbs(configFile) {
		return configFile, nil
	}
	path, err := filepath.Abs(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %v", err)
	}
	return path, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig writes the configuration back to the file it was loaded from,
// creating the parent directory when needed.
func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return fmt.Errorf("configuration has no file path")
	}

	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c._absConfigFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}
