package redis_test

import (
	"context"
	"testing"
	"time"

	cacheredis "logistics/internal/adapters/out/redis"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type CacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	cache     *cacheredis.Cache
}

func (suite *CacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.cache = cacheredis.NewCacheWithClient(suite.client)
}

func (suite *CacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *CacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CacheIntegrationTestSuite) TestGet_Miss() {
	value, hit, err := suite.cache.Get(context.Background(), "shipment-status:1")

	suite.Require().NoError(err)
	suite.False(hit)
	suite.Nil(value)
}

func (suite *CacheIntegrationTestSuite) TestSetWithTTL_ThenGet() {
	ctx := context.Background()

	err := suite.cache.SetWithTTL(ctx, "shipment-status:1", []byte(`{"id":1}`), time.Minute)
	suite.Require().NoError(err)

	value, hit, err := suite.cache.Get(ctx, "shipment-status:1")
	suite.Require().NoError(err)
	suite.True(hit)
	suite.JSONEq(`{"id":1}`, string(value))

	ttl, err := suite.client.TTL(ctx, "shipment-status:1").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, 50*time.Second)
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *CacheIntegrationTestSuite) TestSetWithTTL_Expires() {
	ctx := context.Background()

	suite.Require().NoError(suite.cache.SetWithTTL(ctx, "find-user:ada@example.com", []byte(`{}`), time.Second))

	suite.Eventually(func() bool {
		_, hit, err := suite.cache.Get(ctx, "find-user:ada@example.com")
		return err == nil && !hit
	}, 5*time.Second, 100*time.Millisecond)
}

func (suite *CacheIntegrationTestSuite) TestGet_BackendUnavailable() {
	broken := cacheredis.NewCacheWithClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer broken.Close()

	_, hit, err := broken.Get(context.Background(), "shipment-status:1")

	suite.Require().Error(err)
	suite.False(hit)
}

func TestCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CacheIntegrationTestSuite))
}
