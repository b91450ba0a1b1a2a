// Package config loads gradientlab's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/gradientlab/config.toml (falling back
// to ~/.config/gradientlab/config.toml) unless a path is given explicitly.
// Every key is optional; missing keys keep their defaults:
//
//	[preview]
//	width = 800
//	height = 450
//	workers = 4
//	handles = true
//
//	[server]
//	addr = "localhost:7080"
//
//	[cache]
//	backend = "redis"        # none, file or redis
//	redis_addr = "localhost:6379"
//	ttl = "72h"
//
//	[design]
//	type = "conic"
//	angle = 45
//	center = { x = 50, y = 50 }
//
//	[[design.stops]]
//	color = "#4f46e5"
//	position = 0
//
//	[[design.stops]]
//	color = "#06b6d4"
//	position = 100
//
// The [design] table is the design the editor and the preview server start
// from.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gradientlab/pkg/cache"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/pipeline"
)

const appName = "gradientlab"

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Defaults for keys absent from the file.
const (
	DefaultAddr      = "localhost:7080"
	DefaultRedisAddr = "localhost:6379"
)

// Config is the decoded configuration file.
type Config struct {
	Preview pipeline.Options `toml:"preview"`
	Server  Server           `toml:"server"`
	Cache   Cache            `toml:"cache"`
	Design  gradient.Spec    `toml:"design"`
}

// Server configures the HTTP preview server.
type Server struct {
	Addr string `toml:"addr"`
}

// Cache selects and configures the preview cache backend.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string ("72h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		Server: Server{Addr: DefaultAddr},
		Cache: Cache{
			Backend:   BackendFile,
			RedisAddr: DefaultRedisAddr,
			TTL:       Duration{cache.TTLPreview},
		},
		Design: gradient.Default(),
	}
	cfg.Preview.SetDefaults()
	return cfg
}

// Load reads the file at path over the defaults. An empty path loads the
// default location, where a missing file is not an error; a missing file
// at an explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Default(), nil
	}

	cfg := Default()
	def := cfg.Design
	cfg.Design.Stops, cfg.Design.Nodes = nil, nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	if !md.IsDefined("design", "stops") {
		cfg.Design.Stops = def.Stops
	}
	if !md.IsDefined("design", "nodes") {
		cfg.Design.Nodes = def.Nodes
	}
	if k, err := gradient.ParseKind(string(cfg.Design.Kind)); err == nil {
		cfg.Design.Kind = k
	}
	cfg.Design.Normalize()
	cfg.Design.EnsureIDs()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Preview.ValidateAndSetDefaults(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[preview]")
	}
	if err := errors.ValidateAddr(c.Server.Addr); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[server] addr")
	}
	switch c.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if err := errors.ValidateAddr(c.Cache.RedisAddr); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[cache] redis_addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "[cache] backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "[cache] ttl must not be negative")
	}
	if err := c.Design.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[design]")
	}
	return nil
}

// CacheDir returns the configured file cache directory, or the default
// one when unset.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return DefaultCacheDir()
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultCacheDir returns the default file cache directory
// ($XDG_CACHE_HOME/gradientlab or ~/.cache/gradientlab).
func DefaultCacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
