package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	os.Setenv("MOTIONCAT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	defer os.Unsetenv("MOTIONCAT_CONFIG")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FPS != 30 {
		t.Errorf("expected default fps 30, got %d", c.FPS)
	}
	if c.Theme != "dark" {
		t.Errorf("expected default theme dark, got %q", c.Theme)
	}
	if !c.Mouse {
		t.Error("expected mouse enabled by default")
	}
	if c.ReducedMotion {
		t.Error("expected reduced_motion off by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "fps = 60\ntheme = \"light\"\nreduced_motion = true\nmouse = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Setenv("MOTIONCAT_CONFIG", path)
	defer os.Unsetenv("MOTIONCAT_CONFIG")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FPS != 60 || c.Theme != "light" || !c.ReducedMotion || c.Mouse {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	dir := filepath.Join(xdg, "motioncat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "fps = 45\ntheme = \"light\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOTIONCAT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir()) // no ~/.config fallback file

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FPS != 45 || c.Theme != "light" {
		t.Errorf("config from XDG_CONFIG_HOME not loaded: %+v", c)
	}
}

func TestNormalizeClampsValues(t *testing.T) {
	c := Config{FPS: 1, Theme: "solarized"}
	c.normalize()
	if c.FPS != 8 {
		t.Errorf("fps below range should clamp to 8, got %d", c.FPS)
	}
	if c.Theme != "dark" {
		t.Errorf("unknown theme should fall back to dark, got %q", c.Theme)
	}

	c = Config{FPS: 500, Theme: "light"}
	c.normalize()
	if c.FPS != 120 {
		t.Errorf("fps above range should clamp to 120, got %d", c.FPS)
	}
	if c.Theme != "light" {
		t.Errorf("light theme should survive normalize, got %q", c.Theme)
	}
}
