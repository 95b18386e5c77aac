// Command simplex prints how the simplex method walks a segment, a square and
// a cube, and shows the three panels in a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/config"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/display"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/logging"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/render"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/simplex"
)

func main() {
	configPtr := flag.String("config", "", "Optional YAML configuration file. Flags override its values.")
	outputPtr := flag.String("output", "", "Save the figure to this PNG file instead of opening a window.")
	debugPtr := flag.Int("debug", 0, "Log level. 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	logging.SetLoggerConsole(nil, *colourPtr)
	logging.SetLevel(*debugPtr)

	cfg, err := config.LoadSimplex(*configPtr)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPtr).Msg("failed to load configuration")
	}
	if *outputPtr != "" {
		cfg.Output = *outputPtr
	}

	panels := simplex.Illustrations()
	explain(os.Stdout, panels)

	img, err := render.Simplex(panels, render.WithSize(cfg.Width, cfg.Height))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to draw figure")
	}

	if cfg.Output != "" {
		if err := render.SavePNG(cfg.Output, img); err != nil {
			log.Fatal().Err(err).Msg("failed to save figure")
		}
		log.Info().Str("output", cfg.Output).Msg("figure written")

		return
	}

	log.Debug().Str("title", cfg.Title).Msg("opening window")
	if err := display.Show(img, cfg.Title); err != nil {
		log.Fatal().Err(err).Msg("display failed")
	}
}

func explain(w io.Writer, panels []simplex.Illustration) {
	for _, il := range panels {
		for _, line := range il.Explain() {
			fmt.Fprintln(w, line)
		}
	}
}
