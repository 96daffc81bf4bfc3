package fitsmap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmc/darklimb/pkg/sgrid"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "hmi.continuum_noLimbDark.fits", OutputName("hmi.continuum.fits"))
	assert.Equal(t, "/data/sun_noLimbDark.fits", OutputName("/data/sun.fits"))

	// No recognised suffix: name passes through untouched.
	assert.Equal(t, "frame.fit", OutputName("frame.fit"))
}

func TestHeaderFloatCoercion(t *testing.T) {
	h := NewHeader()
	h.Set("A", 1.5, "")
	h.Set("B", 7, "")
	h.Set("C", int64(9), "")
	h.Set("D", float32(2.5), "")
	h.Set("E", "not a number", "")

	for key, want := range map[string]float64{"A": 1.5, "B": 7, "C": 9, "D": 2.5} {
		got, ok := h.Float(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := h.Float("E")
	assert.False(t, ok)
	_, ok = h.Float("NOPE")
	assert.False(t, ok)
}

func TestHeaderSetUpdatesInPlace(t *testing.T) {
	h := NewHeader()
	h.Set("BZERO", 0.0, "zero point")
	h.Set("BSCALE", 1.0, "")
	h.Set("BZERO", 32768.0, "")

	v, ok := h.Get("BZERO")
	require.True(t, ok)
	assert.Equal(t, 32768.0, v)

	// No duplicate card appended, order preserved.
	assert.Equal(t, []string{"BZERO", "BSCALE"}, h.Keys())
}

func TestHeaderCopyIsIndependent(t *testing.T) {
	h := NewHeader()
	h.Set("WAVELNTH", 6173.0, "")

	h2 := h.Copy()
	h2.Set("WAVELNTH", 171.0, "")

	v, _ := h.Float("WAVELNTH")
	assert.Equal(t, 6173.0, v)
}

func testGrid(t *testing.T, w, h int, values []float64) *sgrid.Grid {
	t.Helper()
	g, err := sgrid.NewFromValues(w, h, values)
	require.NoError(t, err)
	return g
}

func TestWriteReadRoundTrip(t *testing.T) {
	header := NewHeader()
	header.Set("WAVELNTH", 6173.0, "wavelength")
	header.Set("BZERO", 0.0, "")
	header.Set("BSCALE", 1.0, "")
	header.Set("BLANK", -32768, "")

	m := &Map{
		Data:   testGrid(t, 3, 2, []float64{1, 2, 3, 40, 50, 60}),
		Header: header,
	}

	buf := &bytes.Buffer{}
	require.NoError(t, m.WriteTo(buf))

	m2, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 3, m2.Data.Dx())
	assert.Equal(t, 2, m2.Data.Dy())
	assert.Equal(t, m.Data.Values(), m2.Data.Values())

	wl, ok := m2.Header.Float("WAVELNTH")
	require.True(t, ok)
	assert.Equal(t, 6173.0, wl)
}

func TestReadAppliesScaleCards(t *testing.T) {
	// Integer pixels mean BZERO + BSCALE*stored; the loader applies
	// that so the corrector sees physical values.
	header := NewHeader()
	header.Set("BZERO", 10.0, "")
	header.Set("BSCALE", 2.0, "")

	m := &Map{
		Data:   testGrid(t, 2, 2, []float64{0, 1, 2, 3}),
		Header: header,
	}

	buf := &bytes.Buffer{}
	require.NoError(t, m.WriteTo(buf))

	m2, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 14, 16}, m2.Data.Values())

	// The cards themselves come through verbatim.
	bzero, _ := m2.Header.Float("BZERO")
	bscale, _ := m2.Header.Float("BSCALE")
	assert.Equal(t, 10.0, bzero)
	assert.Equal(t, 2.0, bscale)
}
