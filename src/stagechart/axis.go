package stagechart

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/adpopescu/eGFRStageChart/src/egfr"
)

// axisMax returns the x axis upper bound: the top of the stage table,
// extended with 5% headroom rounded up to the next decade when the marker
// overshoots it.
func axisMax(egfrValue float64, stages []egfr.Stage) float64 {
	top := stages[len(stages)-1].Upper
	if math.IsNaN(egfrValue) || math.IsInf(egfrValue, 0) || egfrValue <= top {
		return top
	}
	return math.Ceil(egfrValue*1.05/10) * 10
}

// thresholdTicks places x ticks on the clinical stage thresholds, plus the
// extended bound when the axis reaches past the table.
func thresholdTicks(stages []egfr.Stage, xMax float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(stages)+2)
	for _, s := range stages {
		ticks = append(ticks, chart.Tick{Value: s.Lower, Label: formatTick(s.Lower)})
	}
	top := stages[len(stages)-1].Upper
	ticks = append(ticks, chart.Tick{Value: top, Label: formatTick(top)})
	if xMax > top {
		ticks = append(ticks, chart.Tick{Value: xMax, Label: formatTick(xMax)})
	}
	return ticks
}

// stageTicks labels each band row at its center.
func stageTicks(stages []egfr.Stage) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(stages))
	for i, s := range stages {
		ticks = append(ticks, chart.Tick{Value: float64(i) + 0.5, Label: s.Label})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
