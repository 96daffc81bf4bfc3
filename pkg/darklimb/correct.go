package darklimb

import(
	"log"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/angelmc/darklimb/pkg/fitsmap"
	"github.com/angelmc/darklimb/pkg/sgrid"
)

// Pixels below this raw value are blank/off-detector sentinels, not
// signal. They get zeroed after rescaling rather than propagated.
const invalidBelow = -10.0

// The dynamic range everything is normalized into before correction.
const rescaleTop = 1e4

// Correct builds a corrected copy of the map: the pixel grid is
// rescaled, divided by the wavelength-dependent limb model, truncated
// to unsigned 32-bit values, and brought back up to the input's
// magnitude. The input map is never mutated; the output carries a
// copy of the input header with the scale cards re-asserted.
func Correct(m *fitsmap.Map, cfg Config) (*fitsmap.Map, error) {
	dg, err := ExtractGeometry(m.Header)
	if err != nil {
		return nil, err
	}
	if cfg.Verbosity > 0 {
		log.Printf("correcting %s %s", m.Filename, dg)
	}

	raw := m.Data
	rawMax := raw.Max()
	if rawMax == 0 {
		return nil, DegenerateImageError{"max pixel value is zero"}
	}

	scaled := rescale(raw, rawMax)
	zeroInvalid(raw, scaled)

	u := U(dg.Wavelength)
	v := V(dg.Wavelength)
	limb := LimbField(raw.Dx(), raw.Dy(), dg.XCenter, dg.YCenter, dg.RadiusPixels, u, v)
	if hasZero(limb) {
		return nil, DegenerateImageError{"limb model is zero somewhere on the grid"}
	}

	// int(1e-4 * max) restores the input's order of magnitude. For a
	// faint frame (max below 1e4) this truncates to zero and blanks
	// the whole output; inherited behavior, kept as-is.
	mult := math.Trunc(rawMax / rescaleTop)
	if mult == 0 && cfg.Verbosity > 0 {
		log.Printf("faint frame (max=%f): rescale multiplier is zero, output will be blank", rawMax)
	}

	out := scaled.Copy()
	floats.Div(out.Values(), limb.Values())
	truncateU32(out, mult)

	header := m.Header.Copy()
	header.Set("BZERO", dg.BZero, "")
	header.Set("BLANK", dg.Blank, "")
	header.Set("BSCALE", dg.BScale, "")

	if cfg.Verbosity > 1 {
		log.Printf("corrected %s", out.Stats())
	}

	return &fitsmap.Map{Filename: m.Filename, Data: out, Header: header}, nil
}

// rescale normalizes the raw grid so its max lands at rescaleTop.
func rescale(raw *sgrid.Grid, rawMax float64) *sgrid.Grid {
	scaled := raw.Copy()
	floats.Scale(rescaleTop/rawMax, scaled.Values())
	return scaled
}

// zeroInvalid zeroes every rescaled pixel whose *raw* value is below
// the blank sentinel threshold. Explicit zero-fill, no NaNs.
func zeroInvalid(raw, scaled *sgrid.Grid) {
	rv, sv := raw.Values(), scaled.Values()
	for i := range rv {
		if rv[i] < invalidBelow {
			sv[i] = 0
		}
	}
}

// radialGrid is the distance of each pixel from the disk center,
// normalized so the limb sits at 1.0.
func radialGrid(dx, dy int, xcen, ycen, radius float64) *sgrid.Grid {
	g := sgrid.New(dx, dy)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			ddx := float64(x) - xcen
			ddy := float64(y) - ycen
			g.Set(x, y, math.Sqrt(ddx*ddx+ddy*ddy)/radius)
		}
	}
	return g
}

// clampOffDisk zeroes every normalized radius beyond 1.0. This keeps
// the arcsin argument in domain, and has the side effect that
// off-disk pixels get the disk-center correction factor of exactly 1,
// i.e. they pass through uncorrected rather than being masked.
func clampOffDisk(g *sgrid.Grid) {
	values := g.Values()
	for i, v := range values {
		if v > 1.0 {
			values[i] = 0
		}
	}
}

// LimbField evaluates the darkening model over the whole frame:
//
//	1 - u - v + u*cos(asin(r)) + v*cos(asin(r))^2
//
// with cos(asin(r)) computed as sqrt(1-r²), which is the same thing
// for r in [0,1] without the round trip through inverse trig.
func LimbField(dx, dy int, xcen, ycen, radius, u, v float64) *sgrid.Grid {
	g := radialGrid(dx, dy, xcen, ycen, radius)
	clampOffDisk(g)

	base := 1.0 - u - v
	values := g.Values()
	for i, r := range values {
		if r == 0 {
			// Disk center, and every clamped off-disk pixel:
			// 1 - u - v + u + v, which is 1 exactly.
			values[i] = 1.0
			continue
		}
		c := math.Sqrt(1.0 - r*r)
		values[i] = base + u*c + v*c*c
	}
	return g
}

func hasZero(g *sgrid.Grid) bool {
	for _, v := range g.Values() {
		if v == 0 {
			return true
		}
	}
	return false
}

// truncateU32 truncates each value toward zero into uint32 range and
// applies the integer rescale multiplier. The corrected values are
// non-negative by construction; anything that dips below zero (a raw
// value in (-10, 0) survives the invalid-pixel sweep) floors at 0.
func truncateU32(g *sgrid.Grid, mult float64) {
	values := g.Values()
	for i, v := range values {
		t := math.Trunc(v)
		if t < 0 {
			t = 0
		}
		values[i] = float64(uint32(t)) * mult
	}
}
