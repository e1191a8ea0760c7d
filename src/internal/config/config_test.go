package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostsctl/hostsctl/src/internal/hosts"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "hostsctl.toml")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for missing file: %v", err)
	}

	if cfg.General.AppName != hosts.DefaultAppName {
		t.Errorf("Expected default app name, got %q", cfg.General.AppName)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected default listen addr, got %q", cfg.Server.ListenAddr)
	}
	if cfg.GetConfigFilePath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, cfg.GetConfigFilePath())
	}
	if cfg.GetHostsPath() != hosts.ResolvePath() {
		t.Errorf("Expected system hosts path, got %s", cfg.GetHostsPath())
	}
	if cfg.GetBackupDir() != "" {
		t.Errorf("Expected empty backup dir, got %s", cfg.GetBackupDir())
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected defaults to validate: %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.toml")

	invalidTOML := `[general
	app_name = "x"`

	if err := os.WriteFile(configFile, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "hostsctl.toml")

	validTOML := `[general]
app_name = "Hosts Editor"
hosts_file = "fixtures/hosts"

[backup]
dir = "/var/backups/hosts"

[editor]
command = "code --wait"
`

	if err := os.WriteFile(configFile, []byte(validTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.General.AppName != "Hosts Editor" {
		t.Errorf("Expected app_name 'Hosts Editor', got %s", cfg.General.AppName)
	}
	if got, want := cfg.GetHostsPath(), filepath.Join(tmpDir, "fixtures", "hosts"); got != want {
		t.Errorf("Expected hosts path %s, got %s", want, got)
	}
	if cfg.GetBackupDir() != "/var/backups/hosts" {
		t.Errorf("Expected absolute backup dir to be kept, got %s", cfg.GetBackupDir())
	}
	if cfg.Editor.Command != "code --wait" {
		t.Errorf("Expected editor command, got %q", cfg.Editor.Command)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected missing server section to be defaulted, got %q", cfg.Server.ListenAddr)
	}
	if !strings.Contains(cfg.GetBanner(), "managed by Hosts Editor") {
		t.Errorf("Expected banner to name the app, got %q", cfg.GetBanner())
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configFile, []byte("[general]\napp_name = \"x\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	os.Chdir(tmpDir)

	cfg, err := LoadConfig("config.toml")
	if err != nil {
		t.Fatalf("Expected no error for relative path: %v", err)
	}
	if !filepath.IsAbs(cfg.GetConfigFilePath()) {
		t.Errorf("Expected absolute config path, got %s", cfg.GetConfigFilePath())
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "sub", "hostsctl.toml")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.General.AppName = "Written"
	cfg.Server.ListenAddr = "127.0.0.1:9000"

	if err := cfg.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	reloaded, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig after write: %v", err)
	}
	if reloaded.General.AppName != "Written" || reloaded.Server.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("Unexpected reloaded config: %+v %+v", reloaded.General, reloaded.Server)
	}
}

func TestWriteConfig_NoPath(t *testing.T) {
	if err := DefaultConfig().WriteConfig(); err == nil {
		t.Error("Expected error for config without file path")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"empty app name", func(c *Config) { c.General.AppName = "" }, "general.app_name"},
		{"multiline app name", func(c *Config) { c.General.AppName = "a\nb" }, "general.app_name"},
		{"long app name", func(c *Config) { c.General.AppName = strings.Repeat("x", 65) }, "general.app_name"},
		{"listen addr without port", func(c *Config) { c.Server.ListenAddr = "127.0.0.1" }, "server.listen_addr"},
		{"multiline editor", func(c *Config) { c.Editor.Command = "vim\nrm" }, "editor.command"},
		{"missing section", func(c *Config) { c.Backup = nil }, "backup"},
		{"bad allowed origin", func(c *Config) { c.Server.AllowedOrigins = []string{"not an origin"} }, "server.allowed_origins[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.ValidateConfig()
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidationErrors, got %v", err)
			}

			found := false
			for _, ve := range verrs {
				if ve.FieldPath == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected error for %s, got %v", tt.wantField, verrs)
			}
		})
	}
}
