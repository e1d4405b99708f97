package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// defaultCacheTTL is applied when the config does not set cache.ttl.
const defaultCacheTTL = 24 * time.Hour

// Config is the knot configuration loaded from ~/.config/knot/knot.toml.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	Backend string        `toml:"backend"` // file (default), redis, mongo, none
	TTL     duration      `toml:"ttl"`     // e.g. "24h"; zero means no expiry
	Redis   RedisSettings `toml:"redis"`
	Mongo   MongoSettings `toml:"mongo"`
}

// RedisSettings holds Redis connection settings.
type RedisSettings struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoSettings holds MongoDB connection settings.
type MongoSettings struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the knot serve command.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// duration lets TTLs be written as strings like "24h" in TOML.
type duration time.Duration

// UnmarshalText implements toml's text unmarshaling for durations.
func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// std converts the config duration back to a time.Duration.
func (d duration) std() time.Duration { return time.Duration(d) }

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     duration(defaultCacheTTL),
			Redis:   RedisSettings{Addr: "localhost:6379"},
			Mongo: MongoSettings{
				URI:        "mongodb://localhost:27017",
				Database:   "knot",
				Collection: "cache",
			},
		},
		Server: ServerConfig{Listen: ":8080"},
	}
}

// LoadConfig reads the config file at path, applying defaults for unset
// fields. Unknown keys and invalid backends are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	switch cfg.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return Config{}, fmt.Errorf("load config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the config from the standard path, falling back
// to defaults when the file does not exist. A malformed file also falls back
// to defaults; commands that care can call LoadConfig directly.
func LoadConfigOrDefault() Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
