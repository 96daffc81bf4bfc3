package main

import(
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/angelmc/darklimb/pkg/darklimb"
	"github.com/angelmc/darklimb/pkg/fitsmap"
)

var(
	fVerbosity  int
	fRender     bool
	fFalseColor bool
	fHistogram  bool
	fOutput     string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.BoolVar(&fRender, "render", false, "write before/after figures next to the output")
	flag.BoolVar(&fFalseColor, "falsecolor", false, "render figures with a heat ramp instead of grayscale")
	flag.BoolVar(&fHistogram, "histogram", false, "log an intensity histogram of the corrected frame")
	flag.StringVar(&fOutput, "o", "", "output filename (default: input with _noLimbDark suffix)")
	flag.Parse()

	log.Printf("darklimb starting\n")
}

func main() {
	cfg := darklimb.NewConfig()
	inputs := []string{}

	// Args are FITS inputs, except a .yaml arg which seeds the config.
	for _, arg := range flag.Args() {
		if strings.ToLower(filepath.Ext(arg)) == ".yaml" {
			loaded, err := darklimb.LoadConfig(arg)
			if err != nil {
				log.Fatal(err)
			}
			cfg = loaded
			log.Printf("Loaded base configuration from %s\n", arg)
			continue
		}
		inputs = append(inputs, arg)
	}

	if len(inputs) == 0 {
		log.Fatal("no input FITS file given")
	}

	cfg.Verbosity = fVerbosity
	cfg.Render.Figures = cfg.Render.Figures || fRender
	cfg.Render.FalseColor = cfg.Render.FalseColor || fFalseColor
	cfg.Render.Histogram = cfg.Render.Histogram || fHistogram

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	for _, input := range inputs {
		run(cfg, input)
	}
}

func run(cfg darklimb.Config, input string) {
	original, err := fitsmap.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	corrected, err := darklimb.Correct(original, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Render.Figures {
		figname := func(tag string) string {
			return strings.TrimSuffix(input, filepath.Ext(input)) + "-" + tag + ".png"
		}
		if err := darklimb.RenderFigure(original.Data, cfg.Render, "original", figname("original")); err != nil {
			log.Fatal(err)
		}
		if err := darklimb.RenderFigure(corrected.Data, cfg.Render, "corrected", figname("corrected")); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Render.Histogram {
		darklimb.LogHistogram("corrected", corrected.Data)
	}

	output := fOutput
	if output == "" {
		output = fitsmap.OutputName(input)
	}
	if err := corrected.Save(output); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Your file has been processed and saved as [%s] in the same directory.\n", output)
}
