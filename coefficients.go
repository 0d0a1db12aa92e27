package quadgen

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultVar is the variable name used by the generator and parser.
const DefaultVar = "X"

// Range is a closed interval coefficients are drawn from.
type Range struct {
	Min, Max float64
}

// DefaultRange is [-200, 200].
var DefaultRange = Range{Min: -200, Max: 200}

// Validate rejects reversed or non-finite bounds, and ranges whose width
// overflows. Every difference of two sampled values is bounded by the width,
// so a valid range keeps the reduced coefficients finite.
func (r Range) Validate() error {
	for _, v := range []float64{r.Min, r.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &GenerationError{err: errors.Wrapf(ErrInvalidRange, "bound %v is not finite", v)}
		}
	}
	if r.Min > r.Max {
		return &GenerationError{err: errors.Wrapf(ErrInvalidRange, "min %v is greater than max %v", r.Min, r.Max)}
	}
	if math.IsInf(r.Max-r.Min, 0) {
		return &GenerationError{err: errors.Wrapf(ErrInvalidRange, "width of [%v, %v] overflows", r.Min, r.Max)}
	}
	return nil
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Coefficients of a*X^2 + b*X + c = d*X^2 + e*X + f.
type Coefficients struct {
	A, B, C, D, E, F float64
}

// Sample draws six independent uniform values from r, in the order a, b, c,
// d, e, f. The same rng state always yields the same coefficients.
func Sample(rng *rand.Rand, r Range) Coefficients {
	draw := func() float64 { return r.Min + (r.Max-r.Min)*rng.Float64() }
	var c Coefficients
	c.A = draw()
	c.B = draw()
	c.C = draw()
	c.D = draw()
	c.E = draw()
	c.F = draw()
	return c
}

func (c Coefficients) Values() [6]float64 {
	return [6]float64{c.A, c.B, c.C, c.D, c.E, c.F}
}

// Equation builds a*X^2 + b*X + c = d*X^2 + e*X + f over varName.
func (c Coefficients) Equation(varName string) *Equation {
	return Eq(
		quadratic(varName, NFloat(c.A), NFloat(c.B), NFloat(c.C)),
		quadratic(varName, NFloat(c.D), NFloat(c.E), NFloat(c.F)),
	)
}

// Reduced builds (a-d)*X^2 + (b-e)*X + (c-f) = 0 directly from the
// coefficients. It agrees with c.Equation(varName).Reduce(varName). A
// difference outside the float64 range is kept, and Solve reports it as
// ErrOverflow.
func (c Coefficients) Reduced(varName string) *Equation {
	diff := func(l, r float64) *Num { return numSub(NFloat(l), NFloat(r)) }
	return Eq(quadratic(varName, diff(c.A, c.D), diff(c.B, c.E), diff(c.C, c.F)), N(0))
}

func quadratic(varName string, a, b, c *Num) Expr {
	x := S(varName)
	return AddOf(
		MulOf(a, PowOf(x, N(2))),
		MulOf(b, x),
		c,
	)
}

func (c Coefficients) String() string { return FormatEquation(c, DefaultVar) }

// FormatEquation renders c as "a*X^2 + b*X + c = d*X^2 + e*X + f". Each
// side's leading term prints as-is. Later terms are joined with " + " when
// non-negative and a single space when negative, so the numeral's own minus
// sign shows.
func FormatEquation(c Coefficients, varName string) string {
	var sb strings.Builder
	side := func(a, b, k float64) {
		sb.WriteString(FormatFloat(a))
		sb.WriteString("*" + varName + "^2")
		writeSigned(&sb, b)
		sb.WriteString("*" + varName)
		writeSigned(&sb, k)
	}
	side(c.A, c.B, c.C)
	sb.WriteString(" = ")
	side(c.D, c.E, c.F)
	return sb.String()
}

func writeSigned(sb *strings.Builder, v float64) {
	if v >= 0 {
		sb.WriteString(" + ")
	} else {
		sb.WriteString(" ")
	}
	sb.WriteString(FormatFloat(v))
}

// FormatFloat renders f in its shortest round-trip decimal form. Integral
// values keep a trailing ".0"; magnitudes below 1e-4 or from 1e16 up use
// exponent notation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
