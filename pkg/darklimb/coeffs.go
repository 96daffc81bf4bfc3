package darklimb

import(
	"gonum.org/v1/gonum/floats"
)

// Empirical limb-darkening coefficients, from Cox, A. N.: Allen's
// Astrophysical Quantities, Springer, 2000, as tabulated in the SSW
// IDL darklimb_correct.pro. Each is a quintic in wavelength.
//
// The table is calibrated for wavelengths in Angstroms; WAVELNTH is
// fed in verbatim with no unit conversion, so a file whose header
// carries nm will quietly get nonsense coefficients.
var(
	uCoeffs = [6]float64{-8.9829751, 0.0069093916, -1.8144591e-6, 2.2540875e-10, -1.3389747e-14, 3.0453572e-19}
	vCoeffs = [6]float64{9.2891180, -0.0062212632, 1.5788029e-6, -1.9359644e-10, 1.1444469e-14, -2.599494e-19}
)

func evalPoly(coeffs [6]float64, wavelength float64) float64 {
	basis := [6]float64{1, wavelength, 0, 0, 0, 0}
	for i := 2; i < len(basis); i++ {
		basis[i] = basis[i-1] * wavelength
	}
	return floats.Dot(coeffs[:], basis[:])
}

// U is the second-order limb-darkening coefficient u(λ).
func U(wavelength float64) float64 { return evalPoly(uCoeffs, wavelength) }

// V is the second-order limb-darkening coefficient v(λ).
func V(wavelength float64) float64 { return evalPoly(vCoeffs, wavelength) }
