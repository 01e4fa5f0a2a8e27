package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gologo-lang/gologo/pkg/turtle"
)

// PNG rasterizes the trace and writes it as a PNG image.
func PNG(w io.Writer, canvas Canvas, segments []turtle.Segment) error {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	bg := color.RGBA{canvas.Background.R, canvas.Background.G, canvas.Background.B, 255}
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	for _, seg := range segments {
		rgb := turtle.Palette[seg.Color]
		drawLine(img, seg, color.RGBA{rgb.R, rgb.G, rgb.B, 255})
	}
	return png.Encode(w, img)
}

// drawLine plots a segment with integer Bresenham stepping after rounding
// the endpoints to pixel centers.
func drawLine(img *image.RGBA, seg turtle.Segment, c color.RGBA) {
	x0 := int(math.Round(seg.From.X))
	y0 := int(math.Round(seg.From.Y))
	x1 := int(math.Round(seg.To.X))
	y1 := int(math.Round(seg.To.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
