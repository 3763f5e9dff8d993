package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adpopescu/eGFRStageChart/src/egfr"
	"github.com/adpopescu/eGFRStageChart/src/exitcode"
	"github.com/adpopescu/eGFRStageChart/src/logging"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute and print the eGFR",
	RunE:  runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(exitcode.UsageError)
	}

	v, err := egfr.Calculate(cfg.Creatinine, cfg.Age, cfg.Sex, cfg.Race)
	if err != nil {
		log.Error().Err(err).Msg("calculation failed")
		os.Exit(exitcode.InvalidInput)
	}
	fmt.Println(formatResult(v))
	return nil
}

// formatResult renders the printed calc output line.
func formatResult(v float64) string {
	return fmt.Sprintf("eGFR = %.2f mL/min/1.73m² (%s)", v, egfr.StageFor(v).Label)
}
