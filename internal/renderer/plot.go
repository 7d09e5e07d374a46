package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/linuxmatters/fftspectrum/internal/config"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

func fillColor() color.RGBA {
	return color.RGBA{R: config.FillColorR, G: config.FillColorG, B: config.FillColorB, A: 255}
}

func backgroundColor() color.RGBA {
	return color.RGBA{R: config.BackgroundColorR, G: config.BackgroundColorG, B: config.BackgroundColorB, A: 255}
}

// DrawSpectrum rasterizes normalized values as a filled silhouette on a
// config.Width x config.Height canvas. Value i sits at x = i*Width/(n-1) so
// the curve spans the full width; 1.0 touches the top edge and 0.0 the
// bottom. The area under the curve is filled and the outline is raised by
// half the plot line width. No axes, ticks or padding are drawn.
func DrawSpectrum(values []float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor()), image.Point{}, draw.Src)

	if len(values) == 0 {
		return img
	}
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}

	w := float32(config.Width)
	h := float32(config.Height)
	lift := float32(config.LineWidthPixels() / 2)
	step := w / float32(len(values)-1)

	z := vector.NewRasterizer(config.Width, config.Height)
	z.MoveTo(0, h)
	for i, v := range values {
		y := h - float32(clamp01(v))*h - lift
		if y < 0 {
			y = 0
		}
		z.LineTo(float32(i)*step, y)
	}
	z.LineTo(w, h)
	z.ClosePath()

	z.Draw(img, img.Bounds(), image.NewUniform(fillColor()), image.Point{})
	return img
}

// clamp01 limits v to [0, 1]; NaN is drawn as 0
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
