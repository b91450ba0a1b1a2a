package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if cfg.Preview.Width != 800 || cfg.Preview.Height != 450 {
		t.Errorf("preview size = %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Cache.TTL.Duration != 7*24*time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if gradient.Compose(cfg.Design) != "linear-gradient(90deg, #4f46e5 0%, #06b6d4 100%)" {
		t.Errorf("design = %s", gradient.Compose(cfg.Design))
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[preview]
width = 320
workers = 4
handles = true

[server]
addr = ":9090"

[cache]
backend = "redis"
redis_addr = "cache:6379"
redis_db = 2
ttl = "90m"

[design]
type = "Conic"
angle = 400
center = { x = 25, y = 75 }

[[design.stops]]
color = "#ff0000"
position = 0

[[design.stops]]
color = "#0000ff"
position = 100
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Preview.Width != 320 || cfg.Preview.Height != 450 || cfg.Preview.Workers != 4 || !cfg.Preview.Handles {
		t.Errorf("preview = %+v", cfg.Preview)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.RedisDB != 2 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}

	d := cfg.Design
	if d.Kind != gradient.KindConic || d.Angle != 360 {
		t.Errorf("design kind/angle = %q/%d", d.Kind, d.Angle)
	}
	if len(d.Stops) != 2 || d.Stops[0].Color != colors.MustParse("#ff0000") || d.Stops[0].ID == "" {
		t.Errorf("stops = %+v", d.Stops)
	}
	if len(d.Nodes) != 4 {
		t.Errorf("nodes should keep defaults, got %d", len(d.Nodes))
	}
	want := "conic-gradient(from 360deg at 25% 75%, #ff0000 0%, #0000ff 100%)"
	if got := gradient.Compose(d); got != want {
		t.Errorf("Compose = %s", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `[preview`},
		{"unknown key", "[preview]\ncolour = 1\n"},
		{"backend", "[cache]\nbackend = \"memcached\"\n"},
		{"ttl", "[cache]\nttl = \"soon\"\n"},
		{"addr", "[server]\naddr = \"no-port\"\n"},
		{"size", "[preview]\nwidth = 99999\n"},
		{"kind", "[design]\ntype = \"diamond\"\n"},
		{"empty mesh", "[design]\ntype = \"mesh\"\nnodes = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsInvalid(err) {
				t.Errorf("error %v should be an invalid-input error", err)
			}
		})
	}
}

func TestLoadBadColor(t *testing.T) {
	_, err := Load(writeConfig(t, "[[design.stops]]\ncolor = \"#12\"\n"))
	if !errors.IsInvalid(err) {
		t.Errorf("error = %v, want an invalid-input error", err)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	p, err := DefaultPath()
	if err != nil || p != filepath.Join("/tmp/xdg-config", "gradientlab", "config.toml") {
		t.Errorf("DefaultPath() = %q, %v", p, err)
	}

	cfg := Default()
	dir, err := cfg.CacheDir()
	if err != nil || dir != filepath.Join("/tmp/xdg-cache", "gradientlab") {
		t.Errorf("CacheDir() = %q, %v", dir, err)
	}

	cfg.Cache.Dir = "/srv/previews"
	if dir, _ := cfg.CacheDir(); dir != "/srv/previews" {
		t.Errorf("explicit CacheDir() = %q", dir)
	}
}

func TestPathsHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := DefaultCacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".cache", "gradientlab"); dir != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", dir, want)
	}
}
