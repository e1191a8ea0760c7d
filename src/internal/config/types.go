package config

import (
	"path/filepath"

	"github.com/hostsctl/hostsctl/src/internal/hosts"
	"github.com/hostsctl/hostsctl/src/internal/utils"
)

const (
	DefaultListenAddr = "127.0.0.1:8765"
	configDirName     = "hostsctl"
	configFileName    = "hostsctl.toml"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general" json:"general"`
	// Backup configures where hosts backups are written.
	Backup *BackupConfig `toml:"backup" json:"backup"`
	// Editor configures the external editor launcher.
	Editor *EditorConfig `toml:"editor" json:"editor"`
	// Server configures the local HTTP API.
	Server *ServerConfig `toml:"server" json:"server"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// AppName is written into the banner of rewritten hosts files.
	AppName string `toml:"app_name" json:"app_name" validate:"required,single_line,max=64"`
	// HostsFile overrides the resolved system hosts file path (optional).
	HostsFile string `toml:"hosts_file" json:"hosts_file,omitempty"`
}

type BackupConfig struct {
	// Dir overrides the desktop directory as backup destination (optional).
	Dir string `toml:"dir" json:"dir,omitempty"`
}

type EditorConfig struct {
	// Command is the editor command line; the hosts path is appended (optional).
	Command string `toml:"command" json:"command,omitempty" validate:"single_line"`
}

type ServerConfig struct {
	// ListenAddr is the host:port the API server binds to.
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"required,listen_addr"`
	// UIDir is a directory of static web UI files served at / (optional).
	UIDir string `toml:"ui_dir" json:"ui_dir,omitempty"`
	// AllowedOrigins are the frontend origins allowed to call the API
	// cross-origin, e.g. "http://localhost:5173" (optional).
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins,omitempty" validate:"dive,url"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.AppName == "" {
		c.General.AppName = hosts.DefaultAppName
	}
	if c.Backup == nil {
		c.Backup = &BackupConfig{}
	}
	if c.Editor == nil {
		c.Editor = &EditorConfig{}
	}
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
}

func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetHostsPath returns the configured hosts file, or the system one.
func (c *Config) GetHostsPath() string {
	if c.General == nil || c.General.HostsFile == "" {
		return hosts.ResolvePath()
	}
	return utils.GetAbsolutePath(c.General.HostsFile, c.GetConfigDir())
}

// GetBackupDir returns the configured backup directory, or "" to use the desktop.
func (c *Config) GetBackupDir() string {
	if c.Backup == nil || c.Backup.Dir == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.Backup.Dir, c.GetConfigDir())
}

// GetUIDir returns the absolute web UI directory, or "" when none is configured.
func (c *Config) GetUIDir() string {
	if c.Server == nil || c.Server.UIDir == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.Server.UIDir, c.GetConfigDir())
}

// GetBanner renders the hosts file banner for the configured application name.
func (c *Config) GetBanner() string {
	if c.General == nil {
		return hosts.DefaultBanner()
	}
	return hosts.RenderBanner(c.General.AppName)
}
