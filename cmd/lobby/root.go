package main

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/custom-lobby/internal/config"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/pkg/clock"
	"github.com/KirkDiggler/custom-lobby/internal/pkg/idgen"
)

// deps are the sources of randomness, identity and time
type deps struct {
	roller dice.Roller
	idGen  idgen.Generator
	clock  clock.Clock
}

func defaultDeps() deps {
	return deps{
		roller: dice.DefaultRoller,
		idGen:  idgen.NewUUID("draw"),
		clock:  clock.New(),
	}
}

type options struct {
	configPath   string
	debug        bool
	cacheBackend string
	cacheDir     string
	redisAddr    string
	ddragonURL   string
	gameVersion  string
	lang         string

	roles        map[string]int
	slots        int
	maxChoices   int
	solveTimeout time.Duration
	exclusion    string

	fairness int

	cfg *config.Config
}

func newRootCmd(d deps) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lobby",
		Short: "Custom game lobby helper",
		Long: `lobby draws a champion pool meeting per-role quotas from the Data Dragon
catalog, then splits the entered players into two teams of near-equal skill.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runChampions(cmd, opts, d); err != nil {
				return err
			}
			return runTeams(cmd, opts, d)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.cacheBackend, "cache-backend", config.CacheBackendDisk, "cache backend: disk or redis")
	pf.StringVar(&opts.cacheDir, "cache-dir", "", "directory for the disk cache")
	pf.StringVar(&opts.redisAddr, "redis-addr", config.DefaultRedisAddr, "redis address for the redis cache")
	pf.StringVar(&opts.ddragonURL, "ddragon-url", config.DefaultBaseURL, "Data Dragon base URL")
	pf.StringVar(&opts.gameVersion, "game-version", config.DefaultVersion, `game version: "latest", an index into versions.json, or an exact version`)
	pf.StringVar(&opts.lang, "lang", config.DefaultLanguage, "Data Dragon language")

	addChampionFlags(rootCmd, opts)
	addTeamsFlags(rootCmd, opts)

	rootCmd.AddCommand(newChampionsCmd(opts, d))
	rootCmd.AddCommand(newTeamsCmd(opts, d))
	rootCmd.AddCommand(newCacheCmd(opts))

	return rootCmd
}

func addChampionFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringToIntVar(&opts.roles, "roles", nil, "exact champions per role, e.g. Tank=4,Mage=3")
	f.IntVar(&opts.slots, "slots", config.DefaultSlots, "champions in the pool")
	f.IntVar(&opts.maxChoices, "max-choices", config.DefaultMaxChoices, "candidate pools to enumerate before picking")
	f.DurationVar(&opts.solveTimeout, "solve-timeout", config.DefaultSolveTimeout, "time limit per solver query, 0 for none")
	f.StringVar(&opts.exclusion, "exclusion", config.ExclusionItemSet, "candidate distinctness: item-set or assignment")
}

func addTeamsFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().IntVar(&opts.fairness, "fairness", 0, "shuffles to try; prompted for when unset")
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// load reads the config file and applies flags that were set explicitly
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if changed(cmd, "debug") {
		cfg.Debug = o.debug
	}
	if changed(cmd, "cache-backend") {
		cfg.Cache.Backend = o.cacheBackend
	}
	if changed(cmd, "cache-dir") {
		cfg.Cache.Dir = o.cacheDir
	}
	if changed(cmd, "redis-addr") {
		cfg.Cache.RedisAddr = o.redisAddr
	}
	if changed(cmd, "ddragon-url") {
		cfg.DataDragon.BaseURL = o.ddragonURL
	}
	if changed(cmd, "game-version") {
		cfg.DataDragon.Version = o.gameVersion
	}
	if changed(cmd, "lang") {
		cfg.DataDragon.Language = o.lang
	}
	if changed(cmd, "roles") {
		cfg.Champions.Roles = o.roles
	}
	if changed(cmd, "slots") {
		cfg.Champions.Slots = o.slots
	}
	if changed(cmd, "max-choices") {
		cfg.Champions.MaxChoices = o.maxChoices
	}
	if changed(cmd, "solve-timeout") {
		cfg.Champions.SolveTimeout = o.solveTimeout
	}
	if changed(cmd, "exclusion") {
		cfg.Champions.Exclusion = o.exclusion
	}
	if changed(cmd, "fairness") {
		cfg.Fairness = o.fairness
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	o.cfg = cfg
	return nil
}
