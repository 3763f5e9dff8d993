package egfr

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func TestCalculateReferenceValue(t *testing.T) {
	// 141 × (1.45/0.9)^(-1.209) × 0.993^45 × 1.0, verified numerically.
	got, err := Calculate(1.45, 45, "male", "non-african-american")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	want := 57.74582284269334
	if !approxEqual(got, want, 1e-9) {
		t.Fatalf("expected %.10f got %.10f", want, got)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	cases := []struct {
		name       string
		creatinine float64
		age        float64
		sex        string
		race       string
		want       float64
	}{
		{"male mid-range", 1.0, 30, "male", "", 100.54853827709209},
		{"female high creatinine", 1.2, 60, "female", "non-african-american", 49.239179306823864},
		{"female at reference", 0.7, 40, "female", "", 108.72575494702272},
		{"female low creatinine", 0.5, 25, "female", "", 134.9490489481188},
		{"male african-american", 1.45, 45, "male", "african-american", 66.92740867468159},
	}
	for _, tc := range cases {
		got, err := Calculate(tc.creatinine, tc.age, tc.sex, tc.race)
		if err != nil {
			t.Fatalf("%s: calculate: %v", tc.name, err)
		}
		if !approxEqual(got, tc.want, 1e-9) {
			t.Fatalf("%s: expected %.10f got %.10f", tc.name, tc.want, got)
		}
	}
}

func TestSexCaseInsensitive(t *testing.T) {
	a, err := Calculate(1.0, 30, "MALE", "")
	if err != nil {
		t.Fatalf("calculate MALE: %v", err)
	}
	b, err := Calculate(1.0, 30, "male", "")
	if err != nil {
		t.Fatalf("calculate male: %v", err)
	}
	if a != b {
		t.Fatalf("case-sensitive sex handling: %.10f != %.10f", a, b)
	}
	if _, err := Calculate(1.0, 30, "Female", "African-American"); err != nil {
		t.Fatalf("mixed-case inputs rejected: %v", err)
	}
}

func TestInvalidSex(t *testing.T) {
	for _, sex := range []string{"other", "", "m", "females"} {
		_, err := Calculate(1.0, 30, sex, "")
		if err == nil {
			t.Fatalf("expected error for sex=%q", sex)
		}
		var iae *InvalidArgumentError
		if !errors.As(err, &iae) {
			t.Fatalf("expected InvalidArgumentError for sex=%q, got %T: %v", sex, err, err)
		}
		if iae.Field != "sex" {
			t.Fatalf("unexpected field %q", iae.Field)
		}
	}
}

func TestRaceFactorRatio(t *testing.T) {
	base, err := Calculate(1.1, 52, "female", "non-african-american")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	aa, err := Calculate(1.1, 52, "female", "african-american")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !approxEqual(aa, base*1.159, 1e-12) {
		t.Fatalf("race factor mismatch: %.10f vs %.10f", aa, base*1.159)
	}
}

func TestUnknownRaceFallsBackToDefault(t *testing.T) {
	base, err := Calculate(1.3, 61, "male", "non-african-american")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	got, err := Calculate(1.3, 61, "male", "martian")
	if err != nil {
		t.Fatalf("unknown race must not error: %v", err)
	}
	if got != base {
		t.Fatalf("unknown race should use the default factor: %.10f != %.10f", got, base)
	}
	c, err := DeriveConstants("male", 1.3, "martian")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if c.KnownRace {
		t.Fatal("expected KnownRace=false for an unrecognized race")
	}
	if c.RaceFactor != 1.0 {
		t.Fatalf("expected factor 1.0, got %g", c.RaceFactor)
	}
}

func TestAlphaBranchSwitch(t *testing.T) {
	cases := []struct {
		sex        string
		creatinine float64
		wantAlpha  float64
	}{
		{"male", 0.9, -0.411},   // boundary uses the <= branch
		{"male", 0.9000001, -1.209},
		{"male", 0.5, -0.411},
		{"female", 0.7, -0.329},
		{"female", 0.7000001, -1.209},
		{"female", 2.4, -1.209},
	}
	for _, tc := range cases {
		c, err := DeriveConstants(tc.sex, tc.creatinine, "")
		if err != nil {
			t.Fatalf("derive %s/%g: %v", tc.sex, tc.creatinine, err)
		}
		if c.Alpha != tc.wantAlpha {
			t.Fatalf("%s creatinine=%g: expected alpha %g got %g", tc.sex, tc.creatinine, tc.wantAlpha, c.Alpha)
		}
	}
}

func TestConstantsPerSex(t *testing.T) {
	m, err := DeriveConstants("male", 1.0, "")
	if err != nil {
		t.Fatalf("derive male: %v", err)
	}
	if m.K != 0.9 || m.Coeff != 141 {
		t.Fatalf("unexpected male constants: %+v", m)
	}
	f, err := DeriveConstants("female", 1.0, "")
	if err != nil {
		t.Fatalf("derive female: %v", err)
	}
	if f.K != 0.7 || f.Coeff != 144 {
		t.Fatalf("unexpected female constants: %+v", f)
	}
}

func TestCalculateFinitePositive(t *testing.T) {
	for _, creatinine := range []float64{0.4, 0.7, 0.9, 1.45, 3.2, 9.8} {
		for _, age := range []float64{0, 18, 45, 90} {
			for _, sex := range []string{"male", "female"} {
				for _, race := range []string{"african-american", "non-african-american"} {
					v, err := Calculate(creatinine, age, sex, race)
					if err != nil {
						t.Fatalf("calculate(%g,%g,%s,%s): %v", creatinine, age, sex, race, err)
					}
					if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
						t.Fatalf("calculate(%g,%g,%s,%s) not finite positive: %g", creatinine, age, sex, race, v)
					}
				}
			}
		}
	}
}

func TestNonPositiveCreatinineAccepted(t *testing.T) {
	// Not validated by contract: zero and negative values stay errors-free
	// and produce the mathematically defined result.
	v, err := Calculate(0, 40, "male", "")
	if err != nil {
		t.Fatalf("zero creatinine must not error: %v", err)
	}
	if !math.IsInf(v, 1) {
		t.Fatalf("expected +Inf for zero creatinine, got %g", v)
	}
	v, err = Calculate(-1.0, 40, "male", "")
	if err != nil {
		t.Fatalf("negative creatinine must not error: %v", err)
	}
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN for negative creatinine, got %g", v)
	}
}
