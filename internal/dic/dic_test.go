package dic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/dic"
)

type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

func TestRegisterKeepsFirstImplementation(t *testing.T) {
	defer dic.ResetContainer()

	require.NoError(t, dic.Register[greeter](french{}))
	require.NoError(t, dic.Register[greeter](english{}))

	require.Equal(t, "bonjour", dic.GetService[greeter]().Greet())
}

func TestLookupService(t *testing.T) {
	defer dic.ResetContainer()

	_, exist := dic.LookupService[greeter]()
	require.False(t, exist)
	require.Panics(t, func() { dic.GetService[greeter]() })

	_ = dic.Register[greeter](english{})
	service, exist := dic.LookupService[greeter]()
	require.True(t, exist)
	require.Equal(t, "hello", service.Greet())
}
