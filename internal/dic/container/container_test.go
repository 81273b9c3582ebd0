package container_test

import (
	"testing"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/api"
	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/domain"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/state"
	dic_test "github.com/estrys/fediprofile/tests/dic"
)

func TestBuildContainer(t *testing.T) {
	defer dic.ResetContainer()
	defer viper.Reset()

	dic_test.BuildTestContainer(t)

	conf := dic.GetService[config.Config]()
	assert.Equal(t, "home.social", conf.Instance)
	assert.Equal(t, "https://home.social", conf.Origin)

	assert.Equal(t, "home.social", dic.GetService[mastodon.Provider]().Viewer().Instance())
	assert.NotNil(t, dic.GetService[state.Store]())
	assert.NotNil(t, dic.GetService[*domain.ViewFactory]())
	assert.NotNil(t, dic.GetService[api.ViewRegistry]())
	assert.NotNil(t, dic.GetService[*mux.Router]().Get("view"))

	_, withRedis := dic.LookupService[*cache.RedisClient]()
	require.False(t, withRedis, "accounts stay in memory without a redis address")
}
