// Package egfr implements the CKD-EPI (2009) estimated glomerular
// filtration rate equation and the clinically defined stage bands derived
// from it. The constant derivation is shared between the calculator and
// the chart renderer so the two cannot drift apart.
package egfr

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// ageBase is the per-year age adjustment base of the CKD-EPI equation.
	ageBase = 0.993

	// africanAmericanFactor is the published race multiplier.
	africanAmericanFactor = 1.159

	maleK   = 0.9
	femaleK = 0.7

	maleCoeff   = 141
	femaleCoeff = 144

	// Exponents: the low branch applies when creatinine <= K.
	maleAlphaLow   = -0.411
	femaleAlphaLow = -0.329
	alphaHigh      = -1.209
)

// InvalidArgumentError reports a categorical input that was rejected.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Constants holds the CKD-EPI coefficients selected for one measurement.
// For a given (sex, creatinine, race) triple the values are deterministic.
type Constants struct {
	K          float64 // reference creatinine for the patient's sex (mg/dL)
	Coeff      float64 // scaling coefficient
	Alpha      float64 // creatinine/K exponent
	RaceFactor float64
	KnownRace  bool // false when race fell back to the default factor
}

// DeriveConstants selects the CKD-EPI coefficients for the given inputs.
// Sex and race are matched case-insensitively. An unrecognized sex is an
// *InvalidArgumentError; an unrecognized race falls back to the
// non-African-American factor (1.0) with a warning. An empty race selects
// the default silently.
func DeriveConstants(sex string, creatinine float64, race string) (Constants, error) {
	c := Constants{RaceFactor: 1.0, KnownRace: true}
	switch strings.ToLower(sex) {
	case "male":
		c.K = maleK
		c.Coeff = maleCoeff
		c.Alpha = alphaHigh
		if creatinine <= c.K {
			c.Alpha = maleAlphaLow
		}
	case "female":
		c.K = femaleK
		c.Coeff = femaleCoeff
		c.Alpha = alphaHigh
		if creatinine <= c.K {
			c.Alpha = femaleAlphaLow
		}
	default:
		return Constants{}, &InvalidArgumentError{Field: "sex", Reason: "must be 'male' or 'female'"}
	}
	switch strings.ToLower(race) {
	case "", "non-african-american":
	case "african-american":
		c.RaceFactor = africanAmericanFactor
	default:
		c.KnownRace = false
		log.Warn().Str("race", race).Msg("unrecognized race, using non-african-american factor 1.0")
	}
	return c, nil
}

// Calculate returns the estimated GFR in mL/min/1.73m² for the given serum
// creatinine (mg/dL), age (years), sex ("male"/"female") and race
// ("african-american"/"non-african-american", empty for the default).
//
// The result is not clamped or rounded. Non-positive creatinine is not
// rejected: zero yields +Inf and negative values yield NaN from the
// real-valued exponentiation.
func Calculate(creatinine, age float64, sex, race string) (float64, error) {
	c, err := DeriveConstants(sex, creatinine, race)
	if err != nil {
		return 0, err
	}
	return c.Coeff * math.Pow(creatinine/c.K, c.Alpha) * math.Pow(ageBase, age) * c.RaceFactor, nil
}
