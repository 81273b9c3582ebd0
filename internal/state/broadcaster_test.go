package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decodeReload(t *testing.T) {
	origin, kind, valid := decodeReload(encodeReload("abc", ReloadMute))
	assert.True(t, valid)
	assert.Equal(t, "abc", origin)
	assert.Equal(t, ReloadMute, kind)

	for _, payload := range []string{"", "mute", "|mute", "abc|"} {
		_, _, valid = decodeReload(payload)
		assert.False(t, valid, payload)
	}
}
