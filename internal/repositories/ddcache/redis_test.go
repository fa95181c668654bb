package ddcache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/repositories/ddcache"
	"github.com/KirkDiggler/custom-lobby/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	repo ddcache.Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := ddcache.NewRedis(&ddcache.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *ddcache.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &ddcache.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := ddcache.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGet_Miss() {
	_, err := s.repo.Get(s.ctx, ddcache.GetInput{Key: ddcache.CacheKey{"api", "versions.json"}})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	key := ddcache.CacheKey{"cdn", "14.1.1", "data", "en_US", "champion.json"}
	body := []byte(`{"data":{}}`)

	_, err := s.repo.Put(s.ctx, ddcache.PutInput{Key: key, Data: body})
	s.Require().NoError(err)

	stored, err := s.mr.Get("ddcache:" + key.Hash())
	s.Require().NoError(err)
	s.Equal(string(body), stored)
	s.Zero(s.mr.TTL("ddcache:" + key.Hash()))

	out, err := s.repo.Get(s.ctx, ddcache.GetInput{Key: key})
	s.Require().NoError(err)
	s.Equal(body, out.Data)
}

func (s *RedisRepositoryTestSuite) TestClear_OnlyOwnKeys() {
	for _, v := range []string{"a", "b", "c"} {
		_, err := s.repo.Put(s.ctx, ddcache.PutInput{Key: ddcache.CacheKey{v}, Data: []byte("{}")})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("session:1", "keep"))

	out, err := s.repo.Clear(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, out.Removed)

	s.True(s.mr.Exists("session:1"))
	s.False(s.mr.Exists("ddcache:" + ddcache.CacheKey{"a"}.Hash()))
}

func (s *RedisRepositoryTestSuite) TestUnavailable() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, ddcache.GetInput{Key: ddcache.CacheKey{"a"}})
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Put(s.ctx, ddcache.PutInput{Key: ddcache.CacheKey{"a"}, Data: []byte("{}")})
	s.True(errors.IsUnavailable(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
