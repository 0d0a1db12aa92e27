package quadgen_test

import (
	stderrors "errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/njchilds90/quadgen"
)

// ============================================================
// Sampler tests
// ============================================================

func TestSample_InRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := quadgen.Sample(rng, quadgen.DefaultRange)
		for _, v := range c.Values() {
			if !quadgen.DefaultRange.Contains(v) {
				t.Fatalf("coefficient %v outside [-200, 200]", v)
			}
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	a := quadgen.Sample(rand.New(rand.NewSource(99)), quadgen.DefaultRange)
	b := quadgen.Sample(rand.New(rand.NewSource(99)), quadgen.DefaultRange)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	c := quadgen.Sample(rand.New(rand.NewSource(100)), quadgen.DefaultRange)
	if a == c {
		t.Error("different seeds gave identical coefficients")
	}
}

func TestSample_CoversBothSigns(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var neg, pos int
	for i := 0; i < 200; i++ {
		for _, v := range quadgen.Sample(rng, quadgen.DefaultRange).Values() {
			if v < 0 {
				neg++
			} else {
				pos++
			}
		}
	}
	if neg == 0 || pos == 0 {
		t.Errorf("want both signs, got %d negative and %d non-negative", neg, pos)
	}
}

func TestSample_DegenerateRange(t *testing.T) {
	c := quadgen.Sample(rand.New(rand.NewSource(1)), quadgen.Range{Min: 5, Max: 5})
	for _, v := range c.Values() {
		if v != 5 {
			t.Fatalf("want 5, got %v", v)
		}
	}
}

func TestRange_Validate(t *testing.T) {
	if err := quadgen.DefaultRange.Validate(); err != nil {
		t.Errorf("default range: %v", err)
	}
	err := quadgen.Range{Min: 1, Max: -1}.Validate()
	var genErr *quadgen.GenerationError
	if !stderrors.As(err, &genErr) {
		t.Fatalf("want *GenerationError, got %T (%v)", err, err)
	}
	if !stderrors.Is(err, quadgen.ErrInvalidRange) {
		t.Errorf("want ErrInvalidRange, got %v", err)
	}
	if err := (quadgen.Range{Min: math.Inf(-1), Max: 0}).Validate(); err == nil {
		t.Error("infinite bound should be rejected")
	}
	wide := quadgen.Range{Min: -math.MaxFloat64, Max: math.MaxFloat64}
	if err := wide.Validate(); !stderrors.Is(err, quadgen.ErrInvalidRange) {
		t.Errorf("overflowing width: want ErrInvalidRange, got %v", err)
	}
	if err := (quadgen.Range{Min: -1e200, Max: 1e200}).Validate(); err != nil {
		t.Errorf("[-1e200, 1e200]: %v", err)
	}
}

func TestSample_LargeRangeReducesFinite(t *testing.T) {
	r := quadgen.Range{Min: -1e300, Max: 1e300}
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		c := quadgen.Sample(rng, r)
		set, err := quadgen.Solve(c.Reduced("X"), "X")
		if err != nil && !stderrors.Is(err, quadgen.ErrOverflow) {
			t.Fatalf("%s: %v", c, err)
		}
		if err == nil && len(set.Roots) == 0 {
			t.Fatalf("%s: want roots, got %s", c, set)
		}
	}
}

// ============================================================
// Formatter tests
// ============================================================

func TestFormatEquation_Signs(t *testing.T) {
	c := quadgen.Coefficients{A: 1.5, B: -3, C: 2, D: 0.5, E: 1, F: -4}
	want := "1.5*X^2 -3.0*X + 2.0 = 0.5*X^2 + 1.0*X -4.0"
	if got := quadgen.FormatEquation(c, "X"); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFormatEquation_NegativeLeadingTerm(t *testing.T) {
	c := quadgen.Coefficients{A: -1.25, B: 0, C: 7, D: -2, E: -0.5, F: 0}
	want := "-1.25*X^2 + 0.0*X + 7.0 = -2.0*X^2 -0.5*X + 0.0"
	if got := c.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFormatEquation_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		c := quadgen.Sample(rng, quadgen.DefaultRange)
		s := quadgen.FormatEquation(c, "X")
		if strings.Count(s, "=") != 1 {
			t.Fatalf("%q: want exactly one '='", s)
		}
		sides := strings.Split(s, " = ")
		if len(sides) != 2 {
			t.Fatalf("%q: want two sides", s)
		}
		for j, coeffs := range [][3]float64{{c.A, c.B, c.C}, {c.D, c.E, c.F}} {
			side := sides[j]
			if !strings.HasPrefix(side, quadgen.FormatFloat(coeffs[0])+"*X^2") {
				t.Errorf("%q: leading term should print as-is", side)
			}
			for _, v := range coeffs[1:] {
				num := quadgen.FormatFloat(v)
				if v >= 0 && !strings.Contains(side, " + "+num) {
					t.Errorf("%q: want ' + %s'", side, num)
				}
				if v < 0 && (!strings.Contains(side, " "+num) || strings.Contains(side, "+ "+num)) {
					t.Errorf("%q: want ' %s' without '+'", side, num)
				}
			}
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		0:           "0.0",
		3:           "3.0",
		-200:        "-200.0",
		123.456:     "123.456",
		0.1 + 0.2:   "0.30000000000000004",
		1e-5:        "1e-05",
		0.0001:      "0.0001",
		1e16:        "1e+16",
		-2.5e-7:     "-2.5e-07",
		9999999.125: "9999999.125",
	}
	for in, want := range cases {
		if got := quadgen.FormatFloat(in); got != want {
			t.Errorf("FormatFloat(%v): want %s, got %s", in, want, got)
		}
	}
}
