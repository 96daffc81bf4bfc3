package sgrid

import(
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// A Grid is a square-ish raster of float64 intensity values, stored
// row-major. It is the working representation for a solar image
// frame: the FITS loader fills one in, and the limb corrector reads
// one and builds another.
type Grid struct {
	stride int
	values []float64
}

func New(w, h int) *Grid {
	return &Grid{
		stride: w,
		values: make([]float64, w*h),
	}
}

// NewFromValues wraps an existing row-major slice. The slice is owned
// by the grid afterwards.
func NewFromValues(w, h int, values []float64) (*Grid, error) {
	if len(values) != w*h {
		return nil, fmt.Errorf("grid %dx%d needs %d values, got %d", w, h, w*h, len(values))
	}
	return &Grid{stride: w, values: values}, nil
}

func (g *Grid)Set(x, y int, v float64) { g.values[g.stride*y + x] = v }
func (g *Grid)Get(x, y int) float64    { return g.values[g.stride*y + x] }
func (g *Grid)Dx() int                 { return g.stride }
func (g *Grid)Dy() int                 { return len(g.values) / g.stride }

// Values exposes the backing slice, row-major. Mutating it mutates
// the grid; the gonum floats helpers operate on this directly.
func (g *Grid)Values() []float64       { return g.values }

func (g1 *Grid)NewFromThis() *Grid { return New(g1.Dx(), g1.Dy()) }

func (g1 *Grid)Copy() *Grid {
	g2 := Grid{stride: g1.stride, values: make([]float64, len(g1.values))}
	copy(g2.values, g1.values)
	return &g2
}

// Max returns the largest value in the grid.
func (g *Grid)Max() float64 { return floats.Max(g.values) }

func (g *Grid)MinMax() (float64, float64) {
	return floats.Min(g.values), floats.Max(g.values)
}

func (g *Grid)Stats() string {
	min, max := g.MinMax()
	return fmt.Sprintf("grid[%dx%d, vals{%f,%f}]", g.Dx(), g.Dy(), min, max)
}
