package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterOptions controls software rendering of a frame
type RasterOptions struct {
	Background   color.RGBA
	DepthShading bool     // Dim lines toward the far plane
	HUD          []string // Text lines drawn in the top-left corner
	HUDColor     color.RGBA
}

// DefaultRasterOptions returns a dark background with depth shading
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Background:   color.RGBA{R: 25, G: 25, B: 25, A: 255},
		DepthShading: true,
		HUDColor:     color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Rasterize draws the frame's segments into a new image. Nearer lines win
// where lines cross.
func Rasterize(f Frame, width, height int, opts RasterOptions) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	w, h := float64(width), float64(height)
	for _, seg := range f.Segments {
		x1, y1, z1 := f.ToScreen(seg.From, w, h)
		x2, y2, z2 := f.ToScreen(seg.To, w, h)
		if !InDepthRange(z1, z2) {
			continue
		}

		col := seg.Color.RGBA()
		if opts.DepthShading {
			col = Shade(col, (z1+z2)/2)
		}
		drawLineWithDepth(img, zbuffer,
			int(math.Round(x1)), int(math.Round(y1)), z1,
			int(math.Round(x2)), int(math.Round(y2)), z2,
			col)
	}

	drawHUD(img, opts.HUD, opts.HUDColor)
	return img
}

// Shade scales brightness from 1 at the near plane down to 0.35 at the far plane
func Shade(col color.RGBA, depth float64) color.RGBA {
	t := (math.Max(-1, math.Min(1, depth)) + 1) / 2
	factor := 1 - 0.65*t
	return color.RGBA{
		R: uint8(float64(col.R) * factor),
		G: uint8(float64(col.G) * factor),
		B: uint8(float64(col.B) * factor),
		A: col.A,
	}
}

// drawLineWithDepth draws a line using Bresenham's algorithm, interpolating
// depth along the way and keeping the nearest pixel.
func drawLineWithDepth(img *image.RGBA, zbuffer []float64, x1, y1 int, z1 float64, x2, y2 int, z2 float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for step := 0; ; step++ {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			z := z1
			if steps > 0 {
				z = z1 + (z2-z1)*float64(step)/float64(steps)
			}
			idx := y1*width + x1
			if z <= zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x1, y1, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func drawHUD(img *image.RGBA, lines []string, col color.RGBA) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil() + 2
	for i, line := range lines {
		d.Dot = fixed.P(8, 8+face.Ascent+i*lineHeight)
		d.DrawString(line)
	}
}

// SavePNG writes the image as a PNG file
func SavePNG(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
