package darklimb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmc/darklimb/pkg/fitsmap"
)

func fullHeader() *fitsmap.Header {
	h := fitsmap.NewHeader()
	h.Set("WAVELNTH", 6173.0, "")
	h.Set("CRPIX1", 2048.5, "")
	h.Set("CRPIX2", 2047.5, "")
	h.Set("RSUN_OBS", 971.736328, "")
	h.Set("CDELT1", 0.504372, "")
	h.Set("NAXIS1", 4096, "")
	h.Set("BZERO", 0.0, "")
	h.Set("BLANK", -32768, "")
	h.Set("BSCALE", 1.0, "")
	return h
}

func TestExtractGeometry(t *testing.T) {
	dg, err := ExtractGeometry(fullHeader())
	require.NoError(t, err)

	assert.Equal(t, 6173.0, dg.Wavelength)
	assert.Equal(t, 2048.5, dg.XCenter)
	assert.Equal(t, 2047.5, dg.YCenter)
	assert.Equal(t, 4096, dg.Size)
	assert.InDelta(t, 971.736328/0.504372, dg.RadiusPixels, 1e-9)
	assert.Equal(t, 0.0, dg.BZero)
	assert.Equal(t, -32768, dg.Blank)
	assert.Equal(t, 1.0, dg.BScale)
}

func TestExtractGeometryIntegerWavelength(t *testing.T) {
	// Some instruments write WAVELNTH as an integer card.
	h := fullHeader()
	h.Set("WAVELNTH", 171, "")

	dg, err := ExtractGeometry(h)
	require.NoError(t, err)
	assert.Equal(t, 171.0, dg.Wavelength)
}

func TestExtractGeometryMissingField(t *testing.T) {
	keys := []string{
		"WAVELNTH", "CRPIX1", "CRPIX2", "RSUN_OBS",
		"CDELT1", "NAXIS1", "BZERO", "BLANK", "BSCALE",
	}

	for _, missing := range keys {
		h := fitsmap.NewHeader()
		for _, key := range keys {
			if key == missing {
				continue
			}
			h.Set(key, 1.0, "")
		}

		_, err := ExtractGeometry(h)
		require.Error(t, err, "expected failure without %s", missing)

		var mfe MissingFieldError
		require.True(t, errors.As(err, &mfe))
		assert.Equal(t, missing, mfe.Key)
	}
}
