package dic_test

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/dic/container"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/logger/mocks"
)

func BuildTestContainer(t *testing.T) {
	t.Helper()
	require.NoError(t, os.Setenv("TEST", "true"))
	viper.Set("instance", "home.social")
	viper.Set("log_level", "debug")
	// Make sure nothing reaches a real backend
	viper.Set("token", "")
	viper.Set("redis_address", "")

	// Override here services for tests
	require.NoError(t, dic.Register[logger.Logger](mocks.NewNullLogger()))

	require.NoError(t, container.BuildContainer())
}
