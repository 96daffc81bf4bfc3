package darklimb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoefficientGoldenValues(t *testing.T) {
	// Regression values, computed once from the Allen table quintics.
	assert.InDelta(t, -7.853410047822131, U(171.0), 1e-12)
	assert.InDelta(t, 8.270489492776466, V(171.0), 1e-12)

	// HMI continuum wavelength, the calibration's home turf.
	assert.InDelta(t, 0.8364655566794075, U(6173.0), 1e-12)
	assert.InDelta(t, -0.20427258411986626, V(6173.0), 1e-12)
}

func TestCoefficientsDeterministic(t *testing.T) {
	for _, wavelength := range []float64{171.0, 304.0, 1600.0, 6173.0} {
		assert.Equal(t, U(wavelength), U(wavelength))
		assert.Equal(t, V(wavelength), V(wavelength))
	}
}

func TestCoefficientsContinuous(t *testing.T) {
	// A tiny step in wavelength moves the coefficients by a tiny
	// amount, across the whole calibrated range.
	for wavelength := 1000.0; wavelength < 11000.0; wavelength += 500.0 {
		assert.InDelta(t, U(wavelength), U(wavelength+0.001), 1e-4)
		assert.InDelta(t, V(wavelength), V(wavelength+0.001), 1e-4)
	}
}
