// Package stagechart renders the kidney disease stage chart: six fixed
// horizontal stage bands spanning eGFR 0-120, the computed value drawn as a
// dashed vertical marker with an annotation, and the instantiated formula
// plus a constant legend as captions below the plot.
//
// Every call builds its own chart object and writes to the supplied
// destination; there is no shared drawing state between calls.
package stagechart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/adpopescu/eGFRStageChart/src/egfr"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Options control the output surface. Zero values select the defaults.
type Options struct {
	Width  int
	Height int
	Format Format
}

const (
	defaultWidth  = 960
	defaultHeight = 560

	// captionPad reserves the strip below the x axis for the formula and
	// constant legend captions.
	captionPad = 140
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	return o
}

// Render validates the inputs, builds the stage chart and encodes it to w
// in the requested format. The only rejected input is an unrecognized sex.
func Render(w io.Writer, egfrValue, creatinine, age float64, sex, race string, opts Options) error {
	opts = opts.withDefaults()
	ch, err := build(egfrValue, creatinine, age, sex, race, opts)
	if err != nil {
		return err
	}
	provider := chart.PNG
	if opts.Format == FormatSVG {
		provider = chart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render stage chart: %w", err)
	}
	return nil
}

// RenderImage renders the chart as a decoded in-memory image, for callers
// that present the figure instead of saving it.
func RenderImage(egfrValue, creatinine, age float64, sex, race string, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	opts.Format = FormatPNG
	var buf bytes.Buffer
	if err := Render(&buf, egfrValue, creatinine, age, sex, race, opts); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode stage chart: %w", err)
	}
	return img, nil
}

// WriteFile renders the chart into path. When opts.Format is unset the
// format is inferred from the file extension (".svg" selects SVG,
// everything else PNG).
func WriteFile(path string, egfrValue, creatinine, age float64, sex, race string, opts Options) error {
	if opts.Format == "" && strings.EqualFold(filepath.Ext(path), ".svg") {
		opts.Format = FormatSVG
	}
	var buf bytes.Buffer
	if err := Render(&buf, egfrValue, creatinine, age, sex, race, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// build assembles the chart. Bands, marker and captions are drawn as
// chart elements on top of a fixed [0,xMax]x[0,6] coordinate system so
// their geometry stays exact.
func build(egfrValue, creatinine, age float64, sex, race string, opts Options) (*chart.Chart, error) {
	consts, err := egfr.DeriveConstants(sex, creatinine, race)
	if err != nil {
		return nil, err
	}

	stages := egfr.Stages()
	xMax := axisMax(egfrValue, stages)
	markerLabel := fmt.Sprintf("eGFR = %.2f mL/min/1.73m²", egfrValue)

	ch := &chart.Chart{
		Title:  "Kidney Disease Stages Based on eGFR",
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: captionPad},
		},
		XAxis: chart.XAxis{
			Name:  "eGFR (mL/min/1.73m²)",
			Ticks: thresholdTicks(stages, xMax),
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorAlternateGray.WithAlpha(128),
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{3.0, 3.0},
			},
		},
		YAxis: chart.YAxis{
			Name:  "Kidney Disease Stages",
			Ticks: stageTicks(stages),
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(stages))},
		},
		Series: []chart.Series{
			// The marker series carries the legend entry; the visible line
			// is redrawn above the bands by markerElement.
			chart.ContinuousSeries{
				Name:    markerLabel,
				XValues: []float64{egfrValue, egfrValue},
				YValues: []float64{0, float64(len(stages))},
				Style:   markerStyle(),
			},
		},
	}
	ch.Elements = []chart.Renderable{
		bandsElement(stages, xMax),
		markerElement(egfrValue, xMax, len(stages)),
		captionElement(consts, creatinine, age, sex, opts.Width, opts.Height),
		chart.Legend(ch),
	}
	return ch, nil
}
