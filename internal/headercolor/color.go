package headercolor

import (
	"fmt"
	"math"
	"strconv"
)

const (
	brightLuminance = 220
	darkLuminance   = 50
	darkAlpha       = 0.1
)

type Color struct {
	R, G, B float64
	A       float64
}

func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		formatComponent(c.R),
		formatComponent(c.G),
		formatComponent(c.B),
		formatComponent(c.A),
	)
}

func formatComponent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func Luminance(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Lighten replaces the alpha channel, brighter colours being more opaque.
func Lighten(c Color) Color {
	luminance := Luminance(c.R, c.G, c.B)
	var alpha float64
	switch {
	case luminance >= brightLuminance:
		alpha = 1
	case luminance <= darkLuminance:
		alpha = darkAlpha
	default:
		alpha = luminance / 255
	}
	c.A = math.Min(1, alpha)
	return c
}
