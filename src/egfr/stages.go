package egfr

// Stage is one clinically defined eGFR band.
type Stage struct {
	Label string
	Lower float64 // inclusive bound (mL/min/1.73m²)
	Upper float64 // exclusive bound, except the final band which is closed
	Color string  // display color name resolved by the chart renderer
}

// stageTable is ordered from most severe (Stage 5) to least severe
// (Stage 1); bounds are contiguous over [0,120].
var stageTable = []Stage{
	{Label: "Stage 5: Kidney Failure", Lower: 0, Upper: 15, Color: "darkred"},
	{Label: "Stage 4: Severe Reduction", Lower: 15, Upper: 30, Color: "red"},
	{Label: "Stage 3b: Moderate-to-Severe Reduction", Lower: 30, Upper: 45, Color: "orange"},
	{Label: "Stage 3a: Mild-to-Moderate Reduction", Lower: 45, Upper: 60, Color: "yellow"},
	{Label: "Stage 2: Mild Reduction", Lower: 60, Upper: 90, Color: "lime"},
	{Label: "Stage 1: Normal or High Function", Lower: 90, Upper: 120, Color: "green"},
}

// Stages returns the fixed stage band table, most severe first.
func Stages() []Stage {
	out := make([]Stage, len(stageTable))
	copy(out, stageTable)
	return out
}

// StageFor classifies an eGFR value into its band. A value on a boundary
// belongs to the less severe band, and values above 120 still classify as
// Stage 1.
func StageFor(v float64) Stage {
	for i := len(stageTable) - 1; i > 0; i-- {
		if v >= stageTable[i].Lower {
			return stageTable[i]
		}
	}
	return stageTable[0]
}
