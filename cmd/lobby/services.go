package main

import (
	"time"

	"github.com/KirkDiggler/custom-lobby/internal/clients/datadragon"
	"github.com/KirkDiggler/custom-lobby/internal/config"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/teams"
	"github.com/KirkDiggler/custom-lobby/internal/redis"
	"github.com/KirkDiggler/custom-lobby/internal/repositories/ddcache"
	"github.com/KirkDiggler/custom-lobby/internal/selection"
)

const redisDialTimeout = 2 * time.Second

// newCacheRepository opens the configured backend. The returned func
// releases it.
func newCacheRepository(cfg *config.Config) (ddcache.Repository, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client, err := redis.NewClient(cfg.Cache.RedisAddr, &redis.Options{DialTimeout: redisDialTimeout})
		if err != nil {
			return nil, nil, err
		}
		repo, err := ddcache.NewRedis(&ddcache.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		repo, err := ddcache.NewDisk(&ddcache.DiskConfig{Dir: cfg.Cache.Dir})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func newStore(cfg *config.Config) (*datadragon.Store, func(), error) {
	repo, closeRepo, err := newCacheRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := datadragon.NewStore(&datadragon.StoreConfig{
		Repository: repo,
		Fetcher:    datadragon.NewHTTPFetcher(cfg.DataDragon.HTTPTimeout),
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}
	return store, closeRepo, nil
}

func exclusionMode(name string) (selection.ExclusionMode, error) {
	switch name {
	case config.ExclusionItemSet:
		return selection.ExcludeItemSet, nil
	case config.ExclusionAssignment:
		return selection.ExcludeAssignment, nil
	default:
		return 0, errors.InvalidArgumentf("unknown exclusion mode %q", name)
	}
}

func newChampionsService(cfg *config.Config, d deps) (champions.Service, func(), error) {
	store, closeStore, err := newStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := datadragon.New(&datadragon.Config{
		BaseURL:  cfg.DataDragon.BaseURL,
		Language: cfg.DataDragon.Language,
		Store:    store,
	})
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	mode, err := exclusionMode(cfg.Champions.Exclusion)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	solver, err := selection.NewSolver(&selection.SolverConfig{
		CheckTimeout: cfg.Champions.SolveTimeout,
		Exclusion:    mode,
	})
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	svc, err := champions.NewOrchestrator(&champions.Config{
		DataDragon:  client,
		Solver:      solver,
		Roller:      d.roller,
		IDGenerator: d.idGen,
		Clock:       d.clock,
	})
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}

func newTeamsService(d deps) (teams.Service, error) {
	return teams.NewOrchestrator(&teams.Config{Roller: d.roller})
}
