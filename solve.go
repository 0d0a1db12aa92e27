package quadgen

import (
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ============================================================
// Solvers
// ============================================================

// SolutionSet is the result of solving a polynomial equation. When All is
// set every value of the variable satisfies the equation and Roots is
// empty.
type SolutionSet struct {
	Var   string
	Roots []Expr
	All   bool

	// Degree of the reduced equation, and its discriminant when Degree is 2.
	Degree       int
	Discriminant *Num
}

// String renders the set the way the reporter prints it: a bracketed root
// list, [] for no solution, or "all values of X" for an identity.
func (s SolutionSet) String() string {
	if s.All {
		name := s.Var
		if name == "" {
			name = DefaultVar
		}
		return "all values of " + name
	}
	parts := make([]string, len(s.Roots))
	for i, r := range s.Roots {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Empty reports whether the equation has no solution.
func (s SolutionSet) Empty() bool { return !s.All && len(s.Roots) == 0 }

// Solve reduces eq to a polynomial in varName and returns its roots over the
// complex numbers. Polynomials up to degree two are supported.
func Solve(eq *Equation, varName string) (SolutionSet, error) {
	coeffs := PolyCoeffs(eq.Residual(), varName)
	nums := map[int]*Num{}
	for k, c := range coeffs {
		if isZeroExpr(c) {
			continue
		}
		if _, ok := FreeSymbols(c)[varName]; ok || k < 0 {
			return SolutionSet{}, solveErrorf(eq, ErrNotPolynomial, "term %s", MulOf(c, PowOf(S(varName), N(int64(k)))))
		}
		n, ok := c.Eval()
		if !ok {
			return SolutionSet{}, solveErrorf(eq, ErrNonNumeric, "coefficient of %s^%d is %s", varName, k, c)
		}
		if k > 2 {
			return SolutionSet{}, solveErrorf(eq, ErrUnsupportedDegree, "degree %d", k)
		}
		nums[k] = n
	}
	get := func(k int) *Num {
		if n, ok := nums[k]; ok {
			return n
		}
		return N(0)
	}

	var (
		set SolutionSet
		err error
	)
	if a := get(2); !a.IsZero() {
		set, err = SolveQuadratic(a, get(1), get(0))
	} else {
		set, err = SolveLinear(get(1), get(0))
	}
	if err != nil {
		return SolutionSet{}, &SolveError{Equation: eq.String(), err: err}
	}
	set.Var = varName
	return set, nil
}

// SolveLinear solves a*x + b = 0. It fails with ErrOverflow when a float
// coefficient or the root falls outside the float64 range.
func SolveLinear(a, b *Num) (SolutionSet, error) {
	if err := checkFinite(a, b); err != nil {
		return SolutionSet{}, err
	}
	if a.IsZero() {
		if b.IsZero() {
			return SolutionSet{All: true}, nil
		}
		return SolutionSet{}, nil
	}
	root := numDiv(numNeg(b), a)
	if !root.isFinite() {
		return SolutionSet{}, errors.Wrap(ErrOverflow, "linear root")
	}
	return SolutionSet{Degree: 1, Roots: []Expr{root}}, nil
}

// SolveQuadratic solves a*x^2 + b*x + c = 0. Exact coefficients give exact
// roots with radicals kept symbolic; any float coefficient gives float
// roots. A zero discriminant yields the double root once.
func SolveQuadratic(a, b, c *Num) (SolutionSet, error) {
	if err := checkFinite(a, b, c); err != nil {
		return SolutionSet{}, err
	}
	if a.IsZero() {
		return SolveLinear(b, c)
	}
	disc := numSub(numMul(b, b), numMul(N(4), numMul(a, c)))
	set := SolutionSet{Degree: 2, Discriminant: disc}

	if disc.IsZero() {
		root := numDiv(numNeg(b), numMul(N(2), a))
		if !root.isFinite() {
			return SolutionSet{}, errors.Wrap(ErrOverflow, "double root")
		}
		set.Roots = []Expr{root}
		return set, nil
	}
	if a.IsExact() && b.IsExact() && c.IsExact() {
		set.Roots = exactQuadraticRoots(a, b, disc)
	} else {
		roots, err := floatQuadraticRoots(a.Float64(), b.Float64(), c.Float64())
		if err != nil {
			return SolutionSet{}, err
		}
		set.Roots = roots
	}
	sortRoots(set.Roots)
	return set, nil
}

func checkFinite(coeffs ...*Num) error {
	for _, n := range coeffs {
		if !n.isFinite() {
			return errors.Wrap(ErrOverflow, "coefficient")
		}
	}
	return nil
}

func exactQuadraticRoots(a, b, disc *Num) []Expr {
	twoA := numMul(N(2), a)
	center := numDiv(numNeg(b), twoA)
	half := numRecip(twoA)
	sq := SqrtOf(disc)
	return []Expr{
		AddOf(center, MulOf(half, sq)),
		AddOf(center, MulOf(numNeg(half), sq)),
	}
}

// floatQuadraticRoots avoids cancellation in -b ± sqrt(disc) by computing the
// larger-magnitude root first and deriving the other from c/(a*x1). The
// coefficients are scaled by a power of two so the largest has magnitude in
// [0.5, 1); b*b - 4*a*c then cannot overflow, and the roots are unchanged.
func floatQuadraticRoots(a, b, c float64) ([]Expr, error) {
	_, exp := math.Frexp(math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c))))
	a, b, c = math.Ldexp(a, -exp), math.Ldexp(b, -exp), math.Ldexp(c, -exp)
	disc := b*b - 4*a*c

	var x1, x2 complex128
	if disc < 0 {
		re := -b / a / 2
		im := math.Sqrt(-disc) / math.Abs(a) / 2
		x1, x2 = complex(re, -im), complex(re, im)
	} else {
		q := -(b + math.Copysign(math.Sqrt(disc), b)) / 2
		x1, x2 = complex(q/a, 0), complex(c/q, 0)
	}
	roots := make([]Expr, 0, 2)
	for _, z := range []complex128{x1, x2} {
		if cmplx.IsInf(z) || cmplx.IsNaN(z) {
			return nil, errors.Wrap(ErrOverflow, "quadratic root")
		}
		if imag(z) == 0 {
			roots = append(roots, NFloat(real(z)))
		} else {
			roots = append(roots, AddOf(NFloat(real(z)), MulOf(NFloat(imag(z)), I)))
		}
	}
	return roots, nil
}

// sortRoots orders real roots ascending and complex roots by real part,
// then imaginary part.
func sortRoots(roots []Expr) {
	type keyed struct {
		e Expr
		z complex128
	}
	ks := make([]keyed, len(roots))
	for i, r := range roots {
		z, _ := Complex128(r)
		ks[i] = keyed{e: r, z: z}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if real(ks[i].z) != real(ks[j].z) {
			return real(ks[i].z) < real(ks[j].z)
		}
		return imag(ks[i].z) < imag(ks[j].z)
	})
	for i := range ks {
		roots[i] = ks[i].e
	}
}
