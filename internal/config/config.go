// Package config loads the lobby configuration from an optional YAML file.
// Command-line flags are applied on top by the caller; the resulting value is
// passed explicitly to every constructor.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// Cache backends
const (
	CacheBackendDisk  = "disk"
	CacheBackendRedis = "redis"
)

// Exclusion modes for champion enumeration
const (
	ExclusionItemSet    = "item-set"
	ExclusionAssignment = "assignment"
)

// Defaults
const (
	DefaultFairness     = 10
	DefaultSlots        = 10
	DefaultMaxChoices   = 100
	DefaultSolveTimeout = 30 * time.Second
	DefaultBaseURL      = "https://ddragon.leagueoflegends.com/"
	DefaultLanguage     = "en_US"
	DefaultVersion      = "latest"
	DefaultHTTPTimeout  = 15 * time.Second
	DefaultRedisAddr    = "localhost:6379"
)

// Config is the full lobby configuration
type Config struct {
	Debug      bool             `yaml:"debug"`
	Fairness   int              `yaml:"fairness"`
	Champions  ChampionsConfig  `yaml:"champions"`
	DataDragon DataDragonConfig `yaml:"data_dragon"`
	Cache      CacheConfig      `yaml:"cache"`
}

// ChampionsConfig controls the champion pool draw
type ChampionsConfig struct {
	Slots        int            `yaml:"slots"`
	MaxChoices   int            `yaml:"max_choices"`
	SolveTimeout time.Duration  `yaml:"solve_timeout"`
	Exclusion    string         `yaml:"exclusion"`
	Roles        map[string]int `yaml:"roles"`
}

// DataDragonConfig locates the champion catalog
type DataDragonConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Language    string        `yaml:"language"`
	Version     string        `yaml:"version"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// CacheConfig selects where fetched Data Dragon documents are kept
type CacheConfig struct {
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"`
	RedisAddr string `yaml:"redis_addr"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	roles := make(map[string]int)
	for tag, n := range lol.DefaultRoleTargets() {
		roles[tag.String()] = n
	}

	return &Config{
		Fairness: DefaultFairness,
		Champions: ChampionsConfig{
			Slots:        DefaultSlots,
			MaxChoices:   DefaultMaxChoices,
			SolveTimeout: DefaultSolveTimeout,
			Exclusion:    ExclusionItemSet,
			Roles:        roles,
		},
		DataDragon: DataDragonConfig{
			BaseURL:     DefaultBaseURL,
			Language:    DefaultLanguage,
			Version:     DefaultVersion,
			HTTPTimeout: DefaultHTTPTimeout,
		},
		Cache: CacheConfig{
			Backend:   CacheBackendDisk,
			Dir:       defaultCacheDir(),
			RedisAddr: DefaultRedisAddr,
		},
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".cache"
	}
	return filepath.Join(dir, "custom-lobby")
}

// Load reads path over the defaults. An empty path returns the defaults.
// A roles table in the file replaces the default table as a whole.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	defaultRoles := cfg.Champions.Roles
	cfg.Champions.Roles = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}
	if cfg.Champions.Roles == nil {
		cfg.Champions.Roles = defaultRoles
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("fairness", c.Fairness, 1, vb)
	errors.ValidateMin("champions.slots", c.Champions.Slots, 1, vb)
	errors.ValidateMin("champions.max_choices", c.Champions.MaxChoices, 1, vb)
	if c.Champions.SolveTimeout < 0 {
		vb.Field("champions.solve_timeout", "must not be negative")
	}
	errors.ValidateEnum("champions.exclusion", c.Champions.Exclusion,
		[]string{ExclusionItemSet, ExclusionAssignment}, vb)
	if _, err := c.Champions.RoleTargets(); err != nil {
		vb.InvalidField("champions.roles", errors.GetMessage(err))
	}

	errors.ValidateRequired("data_dragon.base_url", c.DataDragon.BaseURL, vb)
	errors.ValidateRequired("data_dragon.language", c.DataDragon.Language, vb)
	errors.ValidateRequired("data_dragon.version", c.DataDragon.Version, vb)
	if c.DataDragon.HTTPTimeout <= 0 {
		vb.Field("data_dragon.http_timeout", "must be positive")
	}

	errors.ValidateEnum("cache.backend", c.Cache.Backend,
		[]string{CacheBackendDisk, CacheBackendRedis}, vb)
	switch c.Cache.Backend {
	case CacheBackendDisk:
		errors.ValidateRequired("cache.dir", c.Cache.Dir, vb)
	case CacheBackendRedis:
		errors.ValidateRequired("cache.redis_addr", c.Cache.RedisAddr, vb)
	}

	return vb.Build()
}

// RoleTargets parses the roles table
func (c *ChampionsConfig) RoleTargets() (lol.RoleTargets, error) {
	return lol.ParseRoleTargets(c.Roles)
}
