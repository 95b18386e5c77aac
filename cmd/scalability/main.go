// Command scalability fits runtime curves to measured solver runtimes and
// renders the annotated scalability plot.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/compress"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/config"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/logging"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/render"
)

func main() {
	configPtr := flag.String("config", "", "Optional YAML configuration file. Flags override its values.")
	inputPtr := flag.String("input", "", "Runtime measurements CSV (.zst, .s2 and .lz4 are decompressed).")
	outputPtr := flag.String("output", "", "PNG file the plot is written to.")
	reportPtr := flag.String("report", "", "Optional CSV file receiving every fitted model (.zst, .s2 and .lz4 are compressed).")
	debugPtr := flag.Int("debug", 0, "Log level. 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	logging.SetLoggerConsole(nil, *colourPtr)
	logging.SetLevel(*debugPtr)

	cfg, err := config.LoadScalability(*configPtr)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPtr).Msg("failed to load configuration")
	}
	if *inputPtr != "" {
		cfg.Input = *inputPtr
	}
	if *outputPtr != "" {
		cfg.Output = *outputPtr
	}
	if *reportPtr != "" {
		cfg.Report = *reportPtr
	}

	a, err := analyze(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("input", cfg.Input).Msg("analysis failed")
	}

	printReport(os.Stdout, cfg, a)

	sum, err := render.SaveScalability(cfg.Output, plot(cfg, a))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render plot")
	}
	log.Info().Str("output", cfg.Output).Hex("xxhash", fingerprint(sum)).Msg("plot written")

	if cfg.Report == "" {
		return
	}

	stats, err := exportReport(cfg.Report, a)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export report")
	}
	evt := log.Info().Str("report", cfg.Report).Stringer("algorithm", stats.Algorithm)
	if stats.Algorithm != compress.TypeNone {
		evt = evt.Float64("savings_pct", stats.SpaceSavings())
	}
	evt.Int64("bytes", stats.CompressedSize).Msg("report written")
}
