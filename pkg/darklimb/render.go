package darklimb

import(
	"log"
	"math"

	"github.com/skypies/util/histogram"

	"github.com/angelmc/darklimb/pkg/sgrid"
)

// RenderFigure writes a single annotated figure for a grid. Palette
// choice comes from the RenderConfig, format from the file extension.
func RenderFigure(g *sgrid.Grid, rc RenderConfig, title, filename string) error {
	pal := sgrid.Grayscale
	if rc.FalseColor {
		pal = sgrid.FalseColor
	}
	return g.WriteFigure(pal, title, filename)
}

// LogHistogram dumps a log2-bucketed intensity histogram, which is a
// quick way to eyeball whether the correction flattened the disk or
// mangled the dynamic range.
func LogHistogram(label string, g *sgrid.Grid) {
	hist := histogram.Histogram{NumBuckets: 32, ValMin: 0, ValMax: 32}
	for _, v := range g.Values() {
		if v > 0 {
			hist.Add(histogram.ScalarVal(int(math.Log2(v))))
		}
	}
	log.Printf("%s intensity histogram (log2 buckets): %v", label, hist)
}
