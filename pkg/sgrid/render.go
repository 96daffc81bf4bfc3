package sgrid

import(
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/tiff"
)

// A Palette maps a normalized intensity in [0,1] to a color.
type Palette func(t float64) color.Color

// Grayscale gamma-scales the intensity so the solar disk looks
// normal for human vision.
func Grayscale(t float64) color.Color {
	gray := gammaExpand(t)
	return color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
}

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
func gammaExpand(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

var(
	heatStops = []colorful.Color{
		{R: 0.00, G: 0.00, B: 0.05}, // near-black
		{R: 0.55, G: 0.10, B: 0.05}, // dim chromosphere red
		{R: 0.95, G: 0.55, B: 0.05}, // photosphere orange
		{R: 1.00, G: 0.98, B: 0.80}, // disk-center white
	}
)

// FalseColor runs a dark-to-solar-white ramp, blending in Lab space
// so the perceived brightness climbs evenly.
func FalseColor(t float64) color.Color {
	pos := t * float64(len(heatStops)-1)
	i := int(pos)
	if i >= len(heatStops)-1 {
		return heatStops[len(heatStops)-1].Clamped()
	}
	return heatStops[i].BlendLab(heatStops[i+1], pos-float64(i)).Clamped()
}

// ToImage renders the grid, normalizing against its own value range.
func (g *Grid)ToImage(pal Palette) image.Image {
	min, max := g.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA64(image.Rectangle{Max: image.Point{g.Dx(), g.Dy()}})
	for x := 0; x < g.Dx(); x++ {
		for y := 0; y < g.Dy(); y++ {
			img.Set(x, y, pal((g.Get(x, y) - min) / span))
		}
	}
	return img
}

// WriteFigure renders the grid with a title annotation, and writes it
// out as PNG or TIFF depending on the filename extension.
func (g *Grid)WriteFigure(pal Palette, title, filename string) error {
	dc := gg.NewContextForImage(g.ToImage(pal))
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 50, 50)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		writer, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("open+w '%s': %v", filename, err)
		}
		defer writer.Close()
		return tiff.Encode(writer, dc.Image(), nil)
	default:
		return dc.SavePNG(filename)
	}
}
