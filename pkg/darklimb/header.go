package darklimb

import(
	"fmt"

	"github.com/angelmc/darklimb/pkg/fitsmap"
)

// DiskGeometry is everything the corrector needs to know about the
// frame, pulled out of the FITS header in one go.
type DiskGeometry struct {
	Wavelength   float64 // WAVELNTH, taken verbatim (see coeffs.go)
	XCenter      float64 // CRPIX1
	YCenter      float64 // CRPIX2
	RadiusPixels float64 // RSUN_OBS / CDELT1
	Size         int     // NAXIS1

	// Scale cards, untouched by the math but re-asserted on the
	// output so a round trip preserves them bit for bit.
	BZero  interface{}
	Blank  interface{}
	BScale interface{}
}

func (dg DiskGeometry)String() string {
	return fmt.Sprintf("disk[λ=%.1f, center=(%.1f,%.1f), r=%.1fpx, %dpx frame]",
		dg.Wavelength, dg.XCenter, dg.YCenter, dg.RadiusPixels, dg.Size)
}

// ExtractGeometry reads the required cards. Pure read; the header is
// not touched. Any absent card fails with MissingFieldError.
func ExtractGeometry(h *fitsmap.Header) (DiskGeometry, error) {
	dg := DiskGeometry{}

	required := []struct {
		key string
		dst *float64
	}{
		{"WAVELNTH", &dg.Wavelength},
		{"CRPIX1", &dg.XCenter},
		{"CRPIX2", &dg.YCenter},
	}
	for _, field := range required {
		val, ok := h.Float(field.key)
		if !ok {
			return dg, MissingFieldError{field.key}
		}
		*field.dst = val
	}

	rsun, ok := h.Float("RSUN_OBS")
	if !ok {
		return dg, MissingFieldError{"RSUN_OBS"}
	}
	cdelt, ok := h.Float("CDELT1")
	if !ok {
		return dg, MissingFieldError{"CDELT1"}
	}
	dg.RadiusPixels = rsun / cdelt

	size, ok := h.Int("NAXIS1")
	if !ok {
		return dg, MissingFieldError{"NAXIS1"}
	}
	dg.Size = size

	// These three are only carried through for round-trip fidelity,
	// but the reference pipeline treats their absence as fatal too.
	for _, scale := range []struct {
		key string
		dst *interface{}
	}{
		{"BZERO", &dg.BZero},
		{"BLANK", &dg.Blank},
		{"BSCALE", &dg.BScale},
	} {
		val, ok := h.Get(scale.key)
		if !ok {
			return dg, MissingFieldError{scale.key}
		}
		*scale.dst = val
	}

	return dg, nil
}
