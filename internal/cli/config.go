package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/stp2sgmwcs/pkg/cache"
	"github.com/matzehuels/stp2sgmwcs/pkg/convert"
	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
)

// Config holds the settings read from config.toml. Command-line flags
// override every field.
//
//	out_dir   = "out"
//	strict    = true
//	allocator = "lowest-free"
//	inf_token = "inf"
//
//	[cache]
//	enabled    = true
//	ttl        = "72h"
//	redis_addr = "localhost:6379"
type Config struct {
	OutDir    string      `toml:"out_dir"`
	Strict    bool        `toml:"strict"`
	Allocator string      `toml:"allocator"`
	InfToken  string      `toml:"inf_token"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Enabled       bool          `toml:"enabled"`
	TTL           time.Duration `toml:"ttl"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
}

func defaultConfig() *Config {
	return &Config{Cache: CacheConfig{TTL: cache.DefaultTTL}}
}

// loadConfig reads the config file at path. With an empty path the default
// location is tried and a missing file is not an error.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = filepath.Join(dir, configFile)
	}

	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys ignored", "file", path, "keys", strings.Join(keys, ", "))
	}
	logger.Debug("loaded config", "file", path)
	return cfg, nil
}

// apply fills opts and useCache from the config for every flag the user did
// not set. changed reports whether a flag was given on the command line.
func (cfg *Config) apply(changed func(name string) bool, opts *convert.Options, useCache *bool) {
	if !changed("out-dir") && cfg.OutDir != "" {
		opts.OutDir = cfg.OutDir
	}
	if !changed("strict") {
		opts.Strict = opts.Strict || cfg.Strict
	}
	if !changed("allocator") && cfg.Allocator != "" {
		opts.Allocator = cfg.Allocator
	}
	if !changed("inf-token") && cfg.InfToken != "" {
		opts.InfToken = cfg.InfToken
	}
	if useCache != nil && !changed("cache") {
		*useCache = cfg.Cache.Enabled
	}
	opts.CacheTTL = cfg.Cache.TTL
}
