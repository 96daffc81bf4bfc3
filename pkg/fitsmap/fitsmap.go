// Package fitsmap is a thin wrapper around astrogo/fitsio: it loads
// the primary HDU of a FITS file into a float64 grid plus an ordered
// header, and writes corrected grids back out. All the numerical work
// happens elsewhere; this package only speaks the container format.
package fitsmap

import(
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/astrogo/fitsio"

	"github.com/angelmc/darklimb/pkg/sgrid"
)

const outputSuffix = "_noLimbDark.fits"

// A Map pairs a pixel grid with its FITS header, like the
// sunpy/astropy map objects solar people are used to.
type Map struct {
	Filename string
	Data     *sgrid.Grid
	Header   *Header
}

// Structural cards are owned by the FITS encoder; carrying them over
// from the input header would fight with the values fitsio derives
// from the new image geometry.
func isStructuralKey(key string) bool {
	switch key {
	case "SIMPLE", "BITPIX", "NAXIS", "NAXIS1", "NAXIS2", "NAXIS3",
		"EXTEND", "XTENSION", "PCOUNT", "GCOUNT", "END":
		return true
	}
	return false
}

// Load reads the primary HDU. Integer pixel data is converted to
// physical values via BZERO + BSCALE*stored, which is what the
// header says the stored numbers mean; the raw BZERO/BSCALE/BLANK
// cards themselves are kept verbatim in the header map.
func Load(path string) (*Map, error) {
	reader, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %v", path, err)
	}
	defer reader.Close()

	m, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("fits load '%s': %v", path, err)
	}
	m.Filename = path
	return m, nil
}

// Read decodes a FITS stream. Split out from Load so tests can feed
// in-memory files through it.
func Read(r io.Reader) (*Map, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("fits decode: %v", err)
	}
	defer f.Close()

	hdu := f.HDU(0)
	img, ok := hdu.(fitsio.Image)
	if !ok {
		return nil, fmt.Errorf("primary HDU is not an image")
	}

	hdr := img.Header()
	axes := hdr.Axes()
	if len(axes) < 2 {
		return nil, fmt.Errorf("primary HDU has %d axes, want 2", len(axes))
	}
	nx, ny := axes[0], axes[1]

	header := NewHeader()
	for _, key := range hdr.Keys() {
		if card := hdr.Get(key); card != nil {
			header.Set(card.Name, card.Value, card.Comment)
		}
	}
	// The extractor reads frame geometry from the header map, so make
	// sure the axis cards are there even if the decoder ate them.
	header.Set("NAXIS1", nx, "")
	header.Set("NAXIS2", ny, "")

	values, err := readPixels(img, hdr.Bitpix(), nx*ny)
	if err != nil {
		return nil, err
	}

	bzero, _ := header.Float("BZERO")
	bscale, ok := header.Float("BSCALE")
	if !ok {
		bscale = 1.0
	}
	if hdr.Bitpix() > 0 && (bzero != 0 || bscale != 1.0) {
		for i := range values {
			values[i] = bzero + bscale*values[i]
		}
	}

	grid, err := sgrid.NewFromValues(nx, ny, values)
	if err != nil {
		return nil, err
	}

	return &Map{Data: grid, Header: header}, nil
}

func readPixels(img fitsio.Image, bitpix, n int) ([]float64, error) {
	values := make([]float64, n)

	switch bitpix {
	case 8:
		raw := make([]int8, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=8): %v", err)
		}
		for i, v := range raw {
			values[i] = float64(v)
		}
	case 16:
		raw := make([]int16, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=16): %v", err)
		}
		for i, v := range raw {
			values[i] = float64(v)
		}
	case 32:
		raw := make([]int32, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=32): %v", err)
		}
		for i, v := range raw {
			values[i] = float64(v)
		}
	case 64:
		raw := make([]int64, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=64): %v", err)
		}
		for i, v := range raw {
			values[i] = float64(v)
		}
	case -32:
		raw := make([]float32, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=-32): %v", err)
		}
		for i, v := range raw {
			values[i] = float64(v)
		}
	case -64:
		raw := make([]float64, n)
		if err := img.Read(&raw); err != nil {
			return nil, fmt.Errorf("fits pixels (bitpix=-64): %v", err)
		}
		copy(values, raw)
	default:
		return nil, fmt.Errorf("unhandled bitpix %d", bitpix)
	}

	return values, nil
}

// Save writes the map to path as a 32-bit integer image, clobbering
// any file already there. Pixel values are written as stored; the
// header's scale cards ride along untouched.
func (m *Map)Save(path string) error {
	writer, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", path, err)
	}
	defer writer.Close()

	if err := m.WriteTo(writer); err != nil {
		return fmt.Errorf("fits save '%s': %v", path, err)
	}
	return nil
}

func (m *Map)WriteTo(w io.Writer) error {
	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("fits create: %v", err)
	}
	defer f.Close()

	nx, ny := m.Data.Dx(), m.Data.Dy()
	img := fitsio.NewImage(32, []int{nx, ny})
	defer img.Close()

	for _, card := range m.Header.Cards() {
		if isStructuralKey(card.Name) {
			continue
		}
		if err := img.Header().Append(card); err != nil {
			return fmt.Errorf("fits header card %s: %v", card.Name, err)
		}
	}

	values := m.Data.Values()
	raw := make([]int32, len(values))
	for i, v := range values {
		raw[i] = int32(int64(v))
	}
	if err := img.Write(&raw); err != nil {
		return fmt.Errorf("fits pixels: %v", err)
	}

	return f.Write(img)
}

// OutputName derives the corrected-image filename the way the IDL
// heritage tools do: swap the .fits suffix for a marker suffix.
func OutputName(in string) string {
	return strings.ReplaceAll(in, ".fits", outputSuffix)
}
