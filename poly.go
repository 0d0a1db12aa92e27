package quadgen

// ============================================================
// Expansion
// ============================================================

// Expand distributes products over sums and multiplies out small integer
// powers of sums.
func Expand(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		expanded := make([]Expr, len(v.Factors()))
		for i, f := range v.Factors() {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			if a, ok := f.(*Add); ok {
				rest := make([]Expr, 0, len(expanded)-1)
				for j, ef := range expanded {
					if j != i {
						rest = append(rest, ef)
					}
				}
				terms := make([]Expr, len(a.Terms()))
				for k, t := range a.Terms() {
					terms[k] = expandExpr(MulOf(append([]Expr{t}, rest...)...))
				}
				return expandExpr(AddOf(terms...))
			}
		}
		return MulOf(expanded...)
	case *Add:
		newTerms := make([]Expr, len(v.Terms()))
		for i, t := range v.Terms() {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		base := expandExpr(v.Base())
		if _, isAdd := base.(*Add); isAdd {
			if n, ok := v.ExpExpr().(*Num); ok && n.IsInteger() && n.IsExact() {
				exp := n.val.Num().Int64()
				if exp >= 0 && exp <= 10 {
					result := Expr(N(1))
					for i := int64(0); i < exp; i++ {
						result = distribute(result, base)
					}
					return result
				}
			}
		}
		return PowOf(base, expandExpr(v.ExpExpr()))
	}
	return e
}

// distribute multiplies two expanded expressions term by term. MulOf would
// fold equal sums back into a power, so products of sums go through here.
func distribute(a, b Expr) Expr {
	var terms []Expr
	for _, ta := range addends(a) {
		for _, tb := range addends(b) {
			terms = append(terms, expandExpr(MulOf(ta, tb)))
		}
	}
	return AddOf(terms...)
}

func addends(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.Terms()
	}
	return []Expr{e}
}

// ============================================================
// Polynomial utilities
// ============================================================

// PolyCoeffsResult maps a power of the variable to its coefficient.
type PolyCoeffsResult map[int]Expr

// PolyCoeffs collects the coefficients of expr by powers of varName. The
// input is expanded first. A term whose dependence on varName is not a
// non-negative integer power keeps the variable inside its degree-0
// coefficient, or lands under a negative key, so callers can reject it.
func PolyCoeffs(expr Expr, varName string) PolyCoeffsResult {
	result := PolyCoeffsResult{}
	extractCoeffs(Expand(expr), varName, result)
	return result
}

func extractCoeffs(e Expr, varName string, out PolyCoeffsResult) {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.Terms() {
			extractCoeffs(t, varName, out)
		}
	case *Mul:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.Factors() {
			if d, ok := varPower(f, varName); ok {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		addCoeff(out, deg, MulOf(coeffFactors...))
	default:
		if d, ok := varPower(e, varName); ok {
			addCoeff(out, d, N(1))
			return
		}
		addCoeff(out, 0, e)
	}
}

// varPower reports n when f is varName^n for an integer n.
func varPower(f Expr, varName string) (int, bool) {
	switch v := f.(type) {
	case *Sym:
		if v.name == varName {
			return 1, true
		}
	case *Pow:
		if sym, ok := v.Base().(*Sym); ok && sym.Name() == varName {
			if n, ok := v.ExpExpr().(*Num); ok && n.IsInteger() && n.IsExact() {
				return int(n.val.Num().Int64()), true
			}
		}
	}
	return 0, false
}

func addCoeff(out PolyCoeffsResult, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = AddOf(existing, val)
	} else {
		out[deg] = val.Simplify()
	}
}

// Degree returns the highest power of varName with a nonzero coefficient.
// The zero polynomial has degree 0.
func Degree(expr Expr, varName string) int {
	return PolyCoeffs(expr, varName).Degree()
}

// Degree returns the highest key with a nonzero coefficient.
func (p PolyCoeffsResult) Degree() int {
	deg := 0
	for k, c := range p {
		if k > deg && !isZeroExpr(c) {
			deg = k
		}
	}
	return deg
}

// Coeff returns the coefficient of varName^deg, or 0.
func (p PolyCoeffsResult) Coeff(deg int) Expr {
	if c, ok := p[deg]; ok {
		return c
	}
	return N(0)
}

func isZeroExpr(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsZero()
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.Terms() {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.Factors() {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.Base(), out)
		collectSymbols(v.ExpExpr(), out)
	}
}
