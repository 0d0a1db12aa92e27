package quadgen_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/njchilds90/quadgen"
)

// ============================================================
// Num tests
// ============================================================

func TestNum_Integer(t *testing.T) {
	n := quadgen.N(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestNum_Rational(t *testing.T) {
	n := quadgen.F(2, 6)
	if n.String() != "1/3" {
		t.Errorf("want 1/3, got %s", n.String())
	}
}

func TestNum_FloatKeepsDecimalPoint(t *testing.T) {
	if got := quadgen.NFloat(3).String(); got != "3.0" {
		t.Errorf("want 3.0, got %s", got)
	}
	if got := quadgen.NFloat(-2.5).String(); got != "-2.5" {
		t.Errorf("want -2.5, got %s", got)
	}
}

func TestNum_FloatArithmeticStaysFloat(t *testing.T) {
	sum := quadgen.AddOf(quadgen.NFloat(0.1), quadgen.NFloat(0.2))
	n, ok := sum.Eval()
	if !ok {
		t.Fatal("sum of numbers should evaluate")
	}
	if n.IsExact() {
		t.Error("float + float should be inexact")
	}
	if n.Float64() != 0.1+0.2 {
		t.Errorf("want %v, got %v", 0.1+0.2, n.Float64())
	}
}

func TestNFloat_PanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NFloat(NaN) should panic")
		}
	}()
	quadgen.NFloat(math.NaN())
}

// ============================================================
// Add / Mul / Pow tests
// ============================================================

func TestAdd_CombinesLikeTerms(t *testing.T) {
	x := quadgen.S("X")
	got := quadgen.String(quadgen.AddOf(x, x, x, quadgen.N(2)))
	if got != "3*X + 2" {
		t.Errorf("want 3*X + 2, got %s", got)
	}
}

func TestAdd_OrdersByDegreeAndPrintsMinus(t *testing.T) {
	x := quadgen.S("X")
	e := quadgen.AddOf(
		quadgen.N(1),
		quadgen.MulOf(quadgen.N(-3), x),
		quadgen.MulOf(quadgen.N(2), quadgen.PowOf(x, quadgen.N(2))),
	)
	if got := e.String(); got != "2*X^2 - 3*X + 1" {
		t.Errorf("want 2*X^2 - 3*X + 1, got %s", got)
	}
}

func TestAdd_CancelsToZero(t *testing.T) {
	x := quadgen.S("X")
	e := quadgen.AddOf(x, quadgen.MulOf(quadgen.N(-1), x))
	if e.String() != "0" {
		t.Errorf("want 0, got %s", e.String())
	}
}

func TestMul_MergesPowers(t *testing.T) {
	x := quadgen.S("X")
	e := quadgen.MulOf(x, quadgen.PowOf(x, quadgen.N(2)))
	if e.String() != "X^3" {
		t.Errorf("want X^3, got %s", e.String())
	}
}

func TestMul_ZeroAnnihilates(t *testing.T) {
	e := quadgen.MulOf(quadgen.N(0), quadgen.S("X"))
	if e.String() != "0" {
		t.Errorf("want 0, got %s", e.String())
	}
}

func TestMul_ImaginaryUnitSquared(t *testing.T) {
	if got := quadgen.MulOf(quadgen.I, quadgen.I).String(); got != "-1" {
		t.Errorf("I*I: want -1, got %s", got)
	}
	if got := quadgen.MulOf(quadgen.I, quadgen.I, quadgen.I).String(); got != "-I" {
		t.Errorf("I^3: want -I, got %s", got)
	}
	if got := quadgen.PowOf(quadgen.I, quadgen.N(4)).String(); got != "1" {
		t.Errorf("I^4: want 1, got %s", got)
	}
}

func TestMul_RationalCoefficientPrintsAsDivision(t *testing.T) {
	e := quadgen.MulOf(quadgen.F(1, 2), quadgen.SqrtOf(quadgen.N(3)), quadgen.I)
	if got := e.String(); got != "sqrt(3)*I/2" {
		t.Errorf("want sqrt(3)*I/2, got %s", got)
	}
}

func TestPow_NumericBase(t *testing.T) {
	if got := quadgen.PowOf(quadgen.N(2), quadgen.N(10)).String(); got != "1024" {
		t.Errorf("want 1024, got %s", got)
	}
	if got := quadgen.PowOf(quadgen.N(2), quadgen.N(-2)).String(); got != "1/4" {
		t.Errorf("want 1/4, got %s", got)
	}
}

func TestPow_DistributesOverProduct(t *testing.T) {
	x := quadgen.S("X")
	e := quadgen.PowOf(quadgen.MulOf(quadgen.N(2), x), quadgen.N(2))
	if e.String() != "4*X^2" {
		t.Errorf("want 4*X^2, got %s", e.String())
	}
}

// ============================================================
// Square roots
// ============================================================

func TestSqrt_PerfectSquare(t *testing.T) {
	if got := quadgen.SqrtOf(quadgen.N(64)).String(); got != "8" {
		t.Errorf("want 8, got %s", got)
	}
	if got := quadgen.SqrtOf(quadgen.F(9, 4)).String(); got != "3/2" {
		t.Errorf("want 3/2, got %s", got)
	}
}

func TestSqrt_ExtractsSquareFactor(t *testing.T) {
	if got := quadgen.SqrtOf(quadgen.N(8)).String(); got != "2*sqrt(2)" {
		t.Errorf("want 2*sqrt(2), got %s", got)
	}
	if got := quadgen.SqrtOf(quadgen.N(2)).String(); got != "sqrt(2)" {
		t.Errorf("want sqrt(2), got %s", got)
	}
}

func TestSqrt_Negative(t *testing.T) {
	if got := quadgen.SqrtOf(quadgen.N(-4)).String(); got != "2*I" {
		t.Errorf("want 2*I, got %s", got)
	}
	if got := quadgen.SqrtOf(quadgen.N(-3)).String(); got != "sqrt(3)*I" {
		t.Errorf("want sqrt(3)*I, got %s", got)
	}
}

func TestSqrt_SquaredIsExact(t *testing.T) {
	r := quadgen.SqrtOf(quadgen.N(2))
	if got := quadgen.MulOf(r, r).String(); got != "2" {
		t.Errorf("sqrt(2)*sqrt(2): want 2, got %s", got)
	}
}

func TestSqrt_Float(t *testing.T) {
	if got := quadgen.SqrtOf(quadgen.NFloat(2.25)).String(); got != "1.5" {
		t.Errorf("want 1.5, got %s", got)
	}
	if got := quadgen.SqrtOf(quadgen.NFloat(-2.25)).String(); got != "1.5*I" {
		t.Errorf("want 1.5*I, got %s", got)
	}
}

// ============================================================
// Substitution and evaluation
// ============================================================

func TestSub_Polynomial(t *testing.T) {
	x := quadgen.S("X")
	quad := quadgen.AddOf(
		quadgen.MulOf(quadgen.N(2), quadgen.PowOf(x, quadgen.N(2))),
		quadgen.MulOf(quadgen.N(-3), x),
		quadgen.N(1),
	)
	if got := quadgen.Sub(quad, "X", quadgen.N(2)).String(); got != "3" {
		t.Errorf("want 3, got %s", got)
	}
}

func TestComplex128(t *testing.T) {
	e := quadgen.AddOf(quadgen.F(-1, 2), quadgen.MulOf(quadgen.F(1, 2), quadgen.SqrtOf(quadgen.N(-3))))
	z, ok := quadgen.Complex128(e)
	if !ok {
		t.Fatal("expected numeric expression")
	}
	want := complex(-0.5, math.Sqrt(3)/2)
	if cmplx.Abs(z-want) > 1e-12 {
		t.Errorf("want %v, got %v", want, z)
	}
}

func TestComplex128_FreeSymbol(t *testing.T) {
	if _, ok := quadgen.Complex128(quadgen.S("X")); ok {
		t.Error("a free symbol should not evaluate")
	}
}

func TestEqual(t *testing.T) {
	x := quadgen.S("X")
	a := quadgen.AddOf(x, quadgen.N(1))
	b := quadgen.AddOf(quadgen.N(1), x)
	if !a.Equal(b) {
		t.Errorf("%s and %s should be equal", a, b)
	}
	if a.Equal(x) {
		t.Error("X + 1 should not equal X")
	}
}

func TestSqrt_OverflowedFloatStaysSymbolic(t *testing.T) {
	huge := quadgen.AddOf(quadgen.NFloat(math.MaxFloat64), quadgen.NFloat(math.MaxFloat64))
	r := quadgen.SqrtOf(huge)
	if _, ok := r.(*quadgen.Pow); !ok {
		t.Errorf("want an unevaluated power, got %s", r)
	}
}
