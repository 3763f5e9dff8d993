package main

import (
	"github.com/spf13/cobra"

	"github.com/adpopescu/eGFRStageChart/src/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "egfrchart",
	Short: "CKD-EPI eGFR calculator with a kidney disease stage chart",
	Long: "Computes an estimated glomerular filtration rate (CKD-EPI, 2009) from serum\n" +
		"creatinine, age, sex and race, and renders the result against the six\n" +
		"kidney disease stage bands.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&cfg.Creatinine, "creatinine", 0, "Serum creatinine in mg/dL (required)")
	pf.Float64Var(&cfg.Age, "age", 0, "Age in years")
	pf.StringVar(&cfg.Sex, "sex", "", "Patient sex: male or female (required)")
	pf.StringVar(&cfg.Race, "race", "non-african-american", "Patient race: african-american or non-african-american")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	pf.StringVar(&configPath, "config", "", "Optional YAML file with chart presentation defaults")
}

// loadConfig merges the optional YAML file after flags are parsed.
func loadConfig() error {
	if configPath == "" {
		return nil
	}
	return cfg.LoadFromFile(configPath)
}
