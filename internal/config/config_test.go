package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/custom-lobby/internal/config"
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "lobby.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := config.Default()

	s.Require().NoError(cfg.Validate())
	s.Equal(10, cfg.Fairness)
	s.Equal(10, cfg.Champions.Slots)
	s.Equal(100, cfg.Champions.MaxChoices)
	s.Equal(config.CacheBackendDisk, cfg.Cache.Backend)
	s.Equal("latest", cfg.DataDragon.Version)

	targets, err := cfg.Champions.RoleTargets()
	s.Require().NoError(err)
	s.Equal(lol.DefaultRoleTargets(), targets)
}

func (s *ConfigTestSuite) TestLoad_EmptyPathIsDefault() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoad_OverridesDefaults() {
	path := s.writeFile(`
fairness: 25
champions:
  slots: 4
  solve_timeout: 2s
  roles:
    tank: 2
    Mage: 1
data_dragon:
  version: "3"
  language: ko_KR
cache:
  backend: redis
  redis_addr: cache:6379
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	s.Equal(25, cfg.Fairness)
	s.Equal(4, cfg.Champions.Slots)
	s.Equal(config.DefaultMaxChoices, cfg.Champions.MaxChoices)
	s.Equal(2*time.Second, cfg.Champions.SolveTimeout)
	s.Equal("3", cfg.DataDragon.Version)
	s.Equal("ko_KR", cfg.DataDragon.Language)
	s.Equal(config.DefaultBaseURL, cfg.DataDragon.BaseURL)
	s.Equal(config.CacheBackendRedis, cfg.Cache.Backend)
	s.Equal("cache:6379", cfg.Cache.RedisAddr)

	targets, err := cfg.Champions.RoleTargets()
	s.Require().NoError(err)
	s.Equal(lol.RoleTargets{lol.TagTank: 2, lol.TagMage: 1}, targets)
}

func (s *ConfigTestSuite) TestLoad_KeepsDefaultRolesWhenOmitted() {
	cfg, err := config.Load(s.writeFile("fairness: 3\n"))
	s.Require().NoError(err)

	targets, err := cfg.Champions.RoleTargets()
	s.Require().NoError(err)
	s.Equal(lol.DefaultRoleTargets(), targets)
}

func (s *ConfigTestSuite) TestLoad_MissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *ConfigTestSuite) TestLoad_MalformedYAML() {
	_, err := config.Load(s.writeFile("fairness: [oops\n"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "zero fairness", mutate: func(c *config.Config) { c.Fairness = 0 }, field: "fairness"},
		{name: "zero slots", mutate: func(c *config.Config) { c.Champions.Slots = 0 }, field: "champions.slots"},
		{name: "zero max choices", mutate: func(c *config.Config) { c.Champions.MaxChoices = 0 }, field: "champions.max_choices"},
		{name: "negative solve timeout", mutate: func(c *config.Config) { c.Champions.SolveTimeout = -time.Second }, field: "champions.solve_timeout"},
		{name: "unknown exclusion", mutate: func(c *config.Config) { c.Champions.Exclusion = "sets" }, field: "champions.exclusion"},
		{name: "unknown role", mutate: func(c *config.Config) { c.Champions.Roles = map[string]int{"Jungler": 1} }, field: "champions.roles"},
		{name: "negative role", mutate: func(c *config.Config) { c.Champions.Roles = map[string]int{"Tank": -1} }, field: "champions.roles"},
		{name: "missing base url", mutate: func(c *config.Config) { c.DataDragon.BaseURL = "" }, field: "data_dragon.base_url"},
		{name: "zero http timeout", mutate: func(c *config.Config) { c.DataDragon.HTTPTimeout = 0 }, field: "data_dragon.http_timeout"},
		{name: "unknown backend", mutate: func(c *config.Config) { c.Cache.Backend = "s3" }, field: "cache.backend"},
		{name: "disk without dir", mutate: func(c *config.Config) { c.Cache.Dir = " " }, field: "cache.dir"},
		{name: "redis without addr", mutate: func(c *config.Config) {
			c.Cache.Backend = config.CacheBackendRedis
			c.Cache.RedisAddr = ""
		}, field: "cache.redis_addr"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
