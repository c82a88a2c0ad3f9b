package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ProcessName != "claude" {
		t.Errorf("ProcessName = %q, want claude", cfg.ProcessName)
	}
	if cfg.CPUThreshold != 1.0 {
		t.Errorf("CPUThreshold = %v, want 1.0", cfg.CPUThreshold)
	}
	if cfg.TailLines != 80 {
		t.Errorf("TailLines = %d, want 80", cfg.TailLines)
	}
}

func TestDir_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LATER_HOME", tmp)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != tmp {
		t.Errorf("Dir() = %q, want %q", dir, tmp)
	}
}

func TestLoad_PersistsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LATER_HOME", tmp)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProcessName != "claude" {
		t.Errorf("ProcessName = %q, want default", cfg.ProcessName)
	}

	if _, err := os.Stat(filepath.Join(tmp, "config.json")); err != nil {
		t.Errorf("Load() did not persist initial config: %v", err)
	}
}

func TestLoad_MissingKeysGetDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LATER_HOME", tmp)

	if err := os.WriteFile(filepath.Join(tmp, "config.json"), []byte(`{"cpu_threshold": 2.5}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CPUThreshold != 2.5 {
		t.Errorf("CPUThreshold = %v, want 2.5", cfg.CPUThreshold)
	}
	if cfg.ProcessName != "claude" {
		t.Errorf("ProcessName = %q, want default for missing key", cfg.ProcessName)
	}
	if cfg.TailLines != 80 {
		t.Errorf("TailLines = %d, want default for missing key", cfg.TailLines)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LATER_HOME", tmp)

	if err := os.WriteFile(filepath.Join(tmp, "config.json"), []byte(`{broken`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error on malformed config, got nil")
	}
}

func TestRegistryFilePath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LATER_HOME", tmp)

	path, err := Config{}.RegistryFilePath()
	if err != nil {
		t.Fatalf("RegistryFilePath() error = %v", err)
	}
	if want := filepath.Join(tmp, "registry.json"); path != want {
		t.Errorf("RegistryFilePath() = %q, want %q", path, want)
	}

	path, err = Config{RegistryPath: "/custom/reg.json"}.RegistryFilePath()
	if err != nil {
		t.Fatalf("RegistryFilePath() error = %v", err)
	}
	if path != "/custom/reg.json" {
		t.Errorf("RegistryFilePath() = %q, want override", path)
	}
}
