package datacache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	cache Cache
}

func (s *RedisCacheTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.cache = NewRedis(&RedisConfig{Client: client})
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) TestGet() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectGet("dota:herolist").SetVal(`{"heroes":[]}`)

	data, err := s.cache.Get(ctx, "herolist")
	s.NoError(err)
	s.Equal(`{"heroes":[]}`, string(data))

	// Miss
	s.mock.ExpectGet("dota:herolist").RedisNil()

	_, err = s.cache.Get(ctx, "herolist")
	s.ErrorIs(err, ErrCacheMiss)

	// Dependency error
	s.mock.ExpectGet("dota:herolist").SetErr(errors.New("redis error"))

	_, err = s.cache.Get(ctx, "herolist")
	s.Error(err)
	s.NotErrorIs(err, ErrCacheMiss)
}

func (s *RedisCacheTestSuite) TestSet() {
	ctx := context.Background()
	value := []byte(`{"id":1}`)

	// Happy path
	s.mock.ExpectSet("dota:hero:1", value, time.Hour).SetVal("OK")

	err := s.cache.Set(ctx, "hero:1", value, time.Hour)
	s.NoError(err)

	// Dependency error
	s.mock.ExpectSet("dota:hero:1", value, time.Hour).SetErr(errors.New("redis error"))

	err = s.cache.Set(ctx, "hero:1", value, time.Hour)
	s.Error(err)

	// Input validation
	err = s.cache.Set(ctx, "", value, time.Hour)
	s.Error(err)
}

func (s *RedisCacheTestSuite) TestCustomPrefix() {
	client, mock := redismock.NewClientMock()
	cache := NewRedis(&RedisConfig{Client: client, Prefix: "test:"})

	mock.ExpectGet("test:itemlist").RedisNil()

	_, err := cache.Get(context.Background(), "itemlist")
	s.ErrorIs(err, ErrCacheMiss)
	s.NoError(mock.ExpectationsWereMet())
}

func (s *RedisCacheTestSuite) TestNewRedis_RequiresClient() {
	s.Panics(func() {
		NewRedis(&RedisConfig{})
	})
}
