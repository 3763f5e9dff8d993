package stagechart

import (
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/adpopescu/eGFRStageChart/src/egfr"
)

// bandAlpha matches the 0.7 bar opacity of the reference layout.
const bandAlpha = 178

// palette resolves the stage color names of the band table.
var palette = map[string]drawing.Color{
	"darkred": {R: 139, A: 255},
	"red":     {R: 255, A: 255},
	"orange":  {R: 255, G: 165, A: 255},
	"yellow":  {R: 255, G: 255, A: 255},
	"lime":    {G: 255, A: 255},
	"green":   {G: 128, A: 255},
}

var markerBlue = drawing.Color{B: 255, A: 255}

func markerStyle() chart.Style {
	return chart.Style{
		StrokeColor:     markerBlue,
		StrokeWidth:     2.0,
		StrokeDashArray: []float64{6.0, 4.0},
	}
}

// xToPixel maps an eGFR value on [0,xMax] into the canvas box.
func xToPixel(v, xMax float64, canvasBox chart.Box) int {
	return canvasBox.Left + int(v/xMax*float64(canvasBox.Width()))
}

// yToPixel maps a stage row coordinate on [0,rows] into the canvas box;
// row 0 is the bottom of the plot.
func yToPixel(v float64, rows int, canvasBox chart.Box) int {
	return canvasBox.Bottom - int(v/float64(rows)*float64(canvasBox.Height()))
}

func fillRect(r chart.Renderer, left, top, right, bottom int, fill, stroke drawing.Color, strokeWidth float64) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(strokeWidth)
	r.SetStrokeDashArray(nil)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.Close()
	r.FillStroke()
}

// bandsElement draws the six stage bands as translucent black-edged bars,
// one row per stage, most severe at the bottom.
func bandsElement(stages []egfr.Stage, xMax float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		rows := len(stages)
		for i, s := range stages {
			fill := palette[s.Color].WithAlpha(bandAlpha)
			fillRect(r,
				xToPixel(s.Lower, xMax, canvasBox),
				yToPixel(float64(i+1), rows, canvasBox),
				xToPixel(s.Upper, xMax, canvasBox),
				yToPixel(float64(i), rows, canvasBox),
				fill, chart.ColorBlack, 1.0)
		}
	}
}

// markerElement redraws the dashed eGFR line above the bands and places the
// numeric annotation beside it near the top of the plot.
func markerElement(egfrValue, xMax float64, rows int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if math.IsNaN(egfrValue) || math.IsInf(egfrValue, 0) {
			return
		}
		x := xToPixel(egfrValue, xMax, canvasBox)
		r.SetStrokeColor(markerBlue)
		r.SetStrokeWidth(2.0)
		r.SetStrokeDashArray([]float64{6.0, 4.0})
		r.MoveTo(x, canvasBox.Top)
		r.LineTo(x, canvasBox.Bottom)
		r.Stroke()

		st := chart.Style{FontSize: 10, FontColor: markerBlue}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		r.Text(fmt.Sprintf("%.2f", egfrValue), x+6, yToPixel(float64(rows)-0.5, rows, canvasBox))
	}
}

// captionElement draws the instantiated formula centered in the reserved
// bottom strip and the constant legend on its left.
func captionElement(c egfr.Constants, creatinine, age float64, sex string, width, height int) chart.Renderable {
	formula := fmt.Sprintf("eGFR = %.0f × (%.2f/%.2f)^(%.3f) × (0.993^%g) × %.3f",
		c.Coeff, creatinine, c.K, c.Alpha, age, c.RaceFactor)
	lines := []string{
		"Constants:",
		fmt.Sprintf("- %.0f: Scaling factor", c.Coeff),
		fmt.Sprintf("- %.2f: Serum creatinine (mg/dL)", creatinine),
		fmt.Sprintf("- %.2f: Reference creatinine for %s", c.K, strings.ToLower(sex)),
		fmt.Sprintf("- %.3f: Exponent (based on creatinine)", c.Alpha),
		"- 0.993: Age adjustment factor",
		fmt.Sprintf("- %g: Age in years", age),
		fmt.Sprintf("- %.3f: Race adjustment factor", c.RaceFactor),
	}
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		base := height - captionPad

		st := chart.Style{FontSize: 10, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		tw := r.MeasureText(formula).Width()
		r.Text(formula, (width-tw)/2, base+20)

		st = chart.Style{FontSize: 8, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		y := base + 38
		for _, line := range lines {
			r.Text(line, 14, y)
			y += 12
		}
	}
}
