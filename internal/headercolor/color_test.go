package headercolor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estrys/fediprofile/internal/headercolor"
)

func TestLighten(t *testing.T) {
	tests := []struct {
		name          string
		color         headercolor.Color
		expectedAlpha float64
	}{
		{name: "white", color: headercolor.Color{R: 255, G: 255, B: 255}, expectedAlpha: 1},
		{name: "black", color: headercolor.Color{R: 0, G: 0, B: 0, A: 255}, expectedAlpha: 0.1},
		{name: "grey", color: headercolor.Color{R: 128, G: 128, B: 128}, expectedAlpha: 128.0 / 255},
		{name: "bright threshold", color: headercolor.Color{R: 220, G: 220, B: 220}, expectedAlpha: 1},
		{name: "dark threshold", color: headercolor.Color{R: 50, G: 50, B: 50}, expectedAlpha: 0.1},
		{name: "saturated green", color: headercolor.Color{G: 255}, expectedAlpha: 0.7152},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lightened := headercolor.Lighten(tt.color)
			assert.InDelta(t, tt.expectedAlpha, lightened.A, 0.0001)
			assert.Equal(t, tt.color.R, lightened.R)
			assert.Equal(t, tt.color.G, lightened.G)
			assert.Equal(t, tt.color.B, lightened.B)
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 255, headercolor.Luminance(255, 255, 255), 0.0001)
	assert.InDelta(t, 0, headercolor.Luminance(0, 0, 0), 0.0001)
	assert.InDelta(t, 128, headercolor.Luminance(128, 128, 128), 0.0001)
}

func TestColor_CSS(t *testing.T) {
	assert.Equal(t, "rgba(255, 127.5, 0, 0.1)", headercolor.Color{R: 255, G: 127.5, B: 0, A: 0.1}.CSS())
}
