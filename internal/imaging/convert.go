package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/borfudin/visionnet/internal/grid"
)

// FromImage converts an image into a Raw-mode grid with three channels
// holding the 8-bit R, G and B components.
func FromImage(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	g, err := grid.New(bounds.Dy(), bounds.Dx(), 3)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot grid a %dx%d image: %w", bounds.Dx(), bounds.Dy(), err)
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, gc, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			g.Set(y, x, 0, int64(r>>8))
			g.Set(y, x, 1, int64(gc>>8))
			g.Set(y, x, 2, int64(b>>8))
		}
	}
	return g, nil
}

// FromImageGray converts an image into a single-channel Raw-mode grid of
// BT.601 luminance values (0-255).
func FromImageGray(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	g, err := grid.New(bounds.Dy(), bounds.Dx(), 1)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot grid a %dx%d image: %w", bounds.Dx(), bounds.Dy(), err)
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, gc, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := (299*int64(r>>8) + 587*int64(gc>>8) + 114*int64(b>>8) + 500) / 1000
			g.Set(y, x, 0, lum)
		}
	}
	return g, nil
}

// FromImageLab converts an image into a three-channel Raw-mode grid of
// scaled CIE L*a*b* values: L* in 0-255, a* and b* in roughly -128..128.
// Fully transparent pixels come out as black.
func FromImageLab(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	g, err := grid.New(bounds.Dy(), bounds.Dx(), 3)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot grid a %dx%d image: %w", bounds.Dx(), bounds.Dy(), err)
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				c = colorful.Color{}
			}
			l, a, b := c.Lab()
			g.Set(y, x, 0, int64(math.Round(l*255)))
			g.Set(y, x, 1, int64(math.Round(a*128)))
			g.Set(y, x, 2, int64(math.Round(b*128)))
		}
	}
	return g, nil
}

// GrayImage renders one channel of a grid as a grayscale image, clamping
// cell values into 0-255.
func GrayImage(g *grid.Grid, ch int) (*image.Gray, error) {
	if ch < 0 || ch >= g.Channels() {
		return nil, fmt.Errorf("imaging: channel %d out of range (grid has %d)", ch, g.Channels())
	}

	rows := g.Rows()
	cols := g.Cols()
	out := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := grid.Clamp(int(g.Get(r, c, ch)), 0, 256)
			out.SetGray(c, r, color.Gray{Y: uint8(v)})
		}
	}
	return out, nil
}

// SaveChannelPNG writes one channel of a grid to path as a grayscale PNG.
func SaveChannelPNG(g *grid.Grid, ch int, path string) error {
	img, err := GrayImage(g, ch)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("imaging: failed to save %s: %w", path, err)
	}
	return nil
}
