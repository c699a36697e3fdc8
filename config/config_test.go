package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/stardrift/parameter"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}

	if cfg.World.Width != parameter.DefaultWorldWidth || cfg.World.Height != parameter.DefaultWorldHeight {
		t.Errorf("world = %vx%v, want defaults", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio disabled by default")
	}
	if cfg.Redis.Enabled {
		t.Error("redis enabled by default")
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stardrift.yaml")
	body := []byte(`
world:
  width: 800
  height: 600
redis:
  enabled: true
  host: cache.local
player:
  name: ace
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("world = %vx%v, want 800x600", cfg.World.Width, cfg.World.Height)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr() != "cache.local:6379" {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.Player.Name != "ace" {
		t.Errorf("player = %q, want ace", cfg.Player.Name)
	}
	// Untouched keys keep their defaults
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadRejectsBadWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stardrift.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative world width accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}
