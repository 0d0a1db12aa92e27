package quadgen

import (
	"math/cmplx"
	"sort"
)

// ============================================================
// Equation
// ============================================================

type Equation struct{ LHS, RHS Expr }

func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func (e *Equation) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}

// Residual returns LHS - RHS, expanded.
func (e *Equation) Residual() Expr {
	return Expand(AddOf(e.LHS, MulOf(N(-1), e.RHS)))
}

// Reduce moves every term to the left-hand side and collects it by powers
// of varName, highest first: (a-d)*X^2 + (b-e)*X + (c-f) = 0.
func (e *Equation) Reduce(varName string) *Equation {
	coeffs := PolyCoeffs(e.Residual(), varName)
	degrees := make([]int, 0, len(coeffs))
	for k := range coeffs {
		degrees = append(degrees, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	x := S(varName)
	terms := make([]Expr, 0, len(degrees))
	for _, k := range degrees {
		terms = append(terms, MulOf(coeffs[k], PowOf(x, N(int64(k)))))
	}
	return Eq(AddOf(terms...), N(0))
}

// Check substitutes root for varName and returns the magnitude of the
// residual. ok is false when either side cannot be evaluated numerically.
func (e *Equation) Check(varName string, root Expr) (float64, bool) {
	z, ok := Complex128(root)
	if !ok {
		return 0, false
	}
	r, ok := evalComplex(e.Residual(), map[string]complex128{varName: z})
	if !ok {
		return 0, false
	}
	return cmplx.Abs(r), true
}

// ============================================================
// Numeric evaluation over the complex numbers
// ============================================================

// Complex128 evaluates an expression free of symbols, I included.
func Complex128(e Expr) (complex128, bool) {
	return evalComplex(e, nil)
}

func evalComplex(e Expr, vars map[string]complex128) (complex128, bool) {
	switch v := e.(type) {
	case *Num:
		return complex(v.Float64(), 0), true
	case imagUnit:
		return 1i, true
	case *Sym:
		z, ok := vars[v.name]
		return z, ok
	case *Add:
		var acc complex128
		for _, t := range v.terms {
			z, ok := evalComplex(t, vars)
			if !ok {
				return 0, false
			}
			acc += z
		}
		return acc, true
	case *Mul:
		acc := complex128(1)
		for _, f := range v.factors {
			z, ok := evalComplex(f, vars)
			if !ok {
				return 0, false
			}
			acc *= z
		}
		return acc, true
	case *Pow:
		b, ok := evalComplex(v.base, vars)
		if !ok {
			return 0, false
		}
		if n, ok := v.exp.(*Num); ok && n.IsExact() {
			if n.IsInteger() && n.val.Num().IsInt64() {
				return intPow(b, n.val.Num().Int64()), true
			}
			if n.Float64() == 0.5 {
				return cmplx.Sqrt(b), true
			}
		}
		x, ok := evalComplex(v.exp, vars)
		if !ok {
			return 0, false
		}
		return cmplx.Pow(b, x), true
	}
	return 0, false
}

func intPow(b complex128, n int64) complex128 {
	if n < 0 {
		return 1 / intPow(b, -n)
	}
	result := complex128(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= b
		}
		b *= b
	}
	return result
}
