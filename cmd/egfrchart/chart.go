package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adpopescu/eGFRStageChart/src/egfr"
	"github.com/adpopescu/eGFRStageChart/src/exitcode"
	"github.com/adpopescu/eGFRStageChart/src/logging"
	"github.com/adpopescu/eGFRStageChart/src/stagechart"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the stage chart to a file or a window",
	RunE:  runChart,
}

func init() {
	f := chartCmd.Flags()
	f.StringVar(&cfg.Out, "out", "", "Output chart file (.png or .svg)")
	f.StringVar(&cfg.Format, "format", "", "Output format: png or svg (default inferred from --out)")
	f.IntVar(&cfg.Width, "width", 0, "Chart width in pixels")
	f.IntVar(&cfg.Height, "height", 0, "Chart height in pixels")
	f.BoolVar(&cfg.Show, "show", false, "Display the chart in a window")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(exitcode.UsageError)
	}
	if !cfg.Show && cfg.Out == "" {
		log.Error().Msg("either --out or --show is required")
		os.Exit(exitcode.UsageError)
	}

	v, err := egfr.Calculate(cfg.Creatinine, cfg.Age, cfg.Sex, cfg.Race)
	if err != nil {
		log.Error().Err(err).Msg("calculation failed")
		os.Exit(exitcode.InvalidInput)
	}

	opts := stagechart.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: stagechart.Format(cfg.Format),
	}
	if cfg.Out != "" {
		if err := stagechart.WriteFile(cfg.Out, v, cfg.Creatinine, cfg.Age, cfg.Sex, cfg.Race, opts); err != nil {
			log.Error().Err(err).Msg("chart write failed")
			os.Exit(exitcode.WriteError)
		}
		fmt.Printf("%s; chart written to %s\n", formatResult(v), cfg.Out)
	}
	if cfg.Show {
		img, err := stagechart.RenderImage(v, cfg.Creatinine, cfg.Age, cfg.Sex, cfg.Race, opts)
		if err != nil {
			log.Error().Err(err).Msg("chart render failed")
			os.Exit(exitcode.RenderError)
		}
		showImage(img, fmt.Sprintf("eGFR = %.2f mL/min/1.73m²", v))
	}
	return nil
}
