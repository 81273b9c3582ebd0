package headercolor

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

const blockSize = 10

var ErrEmptyImage = errors.New("image has no pixel")

// Corners holds the tints of the top left, top right, bottom left and bottom right corners.
type Corners [4]Color

func (c Corners) CSS() []string {
	values := make([]string, 0, len(c))
	for _, corner := range c {
		values = append(values, corner.CSS())
	}
	return values
}

// SampleCorners averages a 10x10 block in each corner, smaller images use what they have.
func SampleCorners(img image.Image) (Corners, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return Corners{}, ErrEmptyImage
	}
	width := min(blockSize, bounds.Dx())
	height := min(blockSize, bounds.Dy())

	origins := [4]image.Point{
		bounds.Min,
		{X: bounds.Max.X - width, Y: bounds.Min.Y},
		{X: bounds.Min.X, Y: bounds.Max.Y - height},
		{X: bounds.Max.X - width, Y: bounds.Max.Y - height},
	}
	var corners Corners
	for i, origin := range origins {
		corners[i] = Lighten(average(img, image.Rectangle{
			Min: origin,
			Max: origin.Add(image.Pt(width, height)),
		}))
	}
	return corners, nil
}

func average(img image.Image, block image.Rectangle) Color {
	var r, g, b, a float64
	for y := block.Min.Y; y < block.Max.Y; y++ {
		for x := block.Min.X; x < block.Max.X; x++ {
			pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r += float64(pixel.R)
			g += float64(pixel.G)
			b += float64(pixel.B)
			a += float64(pixel.A)
		}
	}
	count := float64(block.Dx() * block.Dy())
	return Color{R: r / count, G: g / count, B: b / count, A: a / count}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
