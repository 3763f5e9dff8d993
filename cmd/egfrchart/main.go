// egfrchart computes an estimated glomerular filtration rate (CKD-EPI,
// 2009) and renders the result against the six kidney disease stage bands,
// either into a PNG/SVG file or in a one-shot window.
package main

import (
	"os"

	"github.com/adpopescu/eGFRStageChart/src/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
