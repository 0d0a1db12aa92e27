// Package quadgen generates random quadratic equations and solves them with a
// small deterministic symbolic kernel.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat), floats tracked as inexact
//   - Deterministic simplification and stable output
//   - Explicit random source so every run can be replayed from a seed
package quadgen

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	Sub(varName string, value Expr) Expr
	Eval() (*Num, bool)
	Equal(other Expr) bool
}

// ============================================================
// Num: exact rational, or a float64 carried as inexact
// ============================================================

type Num struct {
	val     *big.Rat
	inexact bool
}

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("quadgen: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat wraps a float64. The result prints and computes as a float.
func NFloat(f float64) *Num {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("quadgen: non-finite float")
	}
	return &Num{val: new(big.Rat).SetFloat64(f), inexact: true}
}

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) Float64() float64      { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(big.NewRat(1, 1)) == 0 }
func (n *Num) IsNegOne() bool        { return n.val.Cmp(big.NewRat(-1, 1)) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }
func (n *Num) IsExact() bool         { return !n.inexact }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }

func (n *Num) String() string {
	if n.inexact {
		return FormatFloat(n.Float64())
	}
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// newNum rounds inexact results back onto float64 so float arithmetic
// behaves like float arithmetic. A result that overflows or underflows to
// zero keeps its exact value, so its sign survives.
func newNum(r *big.Rat, inexact bool) *Num {
	if inexact {
		if f, _ := r.Float64(); !math.IsInf(f, 0) && (f != 0 || r.Sign() == 0) {
			r = new(big.Rat).SetFloat64(f)
		}
	}
	return &Num{val: r, inexact: inexact}
}

// isFinite reports whether n is exact or fits a float64.
func (n *Num) isFinite() bool {
	return !n.inexact || !math.IsInf(n.Float64(), 0)
}

func numAdd(a, b *Num) *Num { return newNum(new(big.Rat).Add(a.val, b.val), a.inexact || b.inexact) }
func numSub(a, b *Num) *Num { return newNum(new(big.Rat).Sub(a.val, b.val), a.inexact || b.inexact) }
func numMul(a, b *Num) *Num { return newNum(new(big.Rat).Mul(a.val, b.val), a.inexact || b.inexact) }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val), inexact: a.inexact} }
func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("quadgen: division by zero")
	}
	return newNum(new(big.Rat).Inv(a.val), a.inexact)
}
func numDiv(a, b *Num) *Num { return numMul(a, numRecip(b)) }

// ============================================================
// Sym: symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym      { return &Sym{name: name} }
func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) Name() string   { return s.name }
func (s *Sym) Eval() (*Num, bool) {
	return nil, false
}
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}

// ============================================================
// I: imaginary unit
// ============================================================

type imagUnit struct{}

// I is the imaginary unit. Products fold I*I to -1.
var I Expr = imagUnit{}

func (imagUnit) Simplify() Expr        { return I }
func (imagUnit) String() string        { return "I" }
func (imagUnit) Sub(string, Expr) Expr { return I }
func (imagUnit) Eval() (*Num, bool)    { return nil, false }
func (imagUnit) Equal(other Expr) bool { _, ok := other.(imagUnit); return ok }

// ============================================================
// Add: sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	// Like terms share the same non-numeric part.
	type like struct {
		coeff *Num
		rest  Expr
	}
	numAccum := N(0)
	groups := map[string]*like{}
	order := []string{}
	for _, t := range flat {
		if v, ok := t.(*Num); ok {
			numAccum = numAdd(numAccum, v)
			continue
		}
		coeff, rest := splitCoeff(t)
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			g = &like{coeff: N(0), rest: rest}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff = numAdd(g.coeff, coeff)
	}

	symbolic := []Expr{}
	constant := []Expr{}
	for _, key := range order {
		g := groups[key]
		if g.coeff.IsZero() {
			continue
		}
		var term Expr
		if g.coeff.IsOne() && !g.coeff.inexact {
			term = g.rest
		} else {
			term = MulOf(g.coeff, g.rest)
		}
		if termDegree(g.rest) > 0 {
			symbolic = append(symbolic, term)
		} else {
			constant = append(constant, term)
		}
	}
	sort.SliceStable(symbolic, func(i, j int) bool {
		di, dj := termDegree(symbolic[i]), termDegree(symbolic[j])
		if di != dj {
			return di > dj
		}
		return termKey(symbolic[i]) < termKey(symbolic[j])
	})
	sort.SliceStable(constant, func(i, j int) bool { return termKey(constant[i]) < termKey(constant[j]) })

	result := symbolic
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	result = append(result, constant...)
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		switch {
		case i == 0:
			sb.WriteString(t.String())
		case isNegativeTerm(t):
			sb.WriteString(" - ")
			sb.WriteString(negate(t).String())
		default:
			sb.WriteString(" + ")
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := N(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Terms() []Expr { return a.terms }

// ============================================================
// Mul: product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	// Equal bases merge by adding exponents: X*X^2 -> X^3, sqrt(2)*sqrt(2) -> 2.
	type power struct {
		orig Expr
		base Expr
		exps []Expr
	}
	coeff := N(1)
	imag := 0
	groups := map[string]*power{}
	order := []string{}
	for _, f := range flat {
		switch v := f.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case imagUnit:
			imag++
		default:
			base, exp := asPow(v)
			key := base.String()
			g, seen := groups[key]
			if !seen {
				g = &power{orig: v, base: base}
				groups[key] = g
				order = append(order, key)
			}
			g.exps = append(g.exps, exp)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}

	others := []Expr{}
	for _, key := range order {
		g := groups[key]
		if len(g.exps) == 1 {
			others = append(others, g.orig)
			continue
		}
		merged := PowOf(g.base, AddOf(g.exps...))
		var parts []Expr
		if inner, ok := merged.(*Mul); ok {
			parts = inner.factors
		} else {
			parts = []Expr{merged}
		}
		for _, p := range parts {
			switch pv := p.(type) {
			case *Num:
				coeff = numMul(coeff, pv)
			case imagUnit:
				imag++
			default:
				others = append(others, p)
			}
		}
	}
	if coeff.IsZero() {
		return N(0)
	}
	switch imag % 4 {
	case 2:
		coeff = numNeg(coeff)
	case 3:
		coeff = numNeg(coeff)
	}

	sort.SliceStable(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	if imag%2 == 1 {
		others = append(others, I)
	}

	if len(others) == 0 {
		return coeff
	}
	if coeff.IsOne() && !coeff.inexact {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	coeff, rest := splitCoeff(m)
	var body string
	if r, ok := rest.(*Mul); ok {
		parts := make([]string, len(r.factors))
		for i, f := range r.factors {
			parts[i] = factorString(f)
		}
		body = strings.Join(parts, "*")
	} else {
		body = factorString(rest)
	}

	switch {
	case coeff.inexact:
		return coeff.String() + "*" + body
	case coeff.IsOne():
		return body
	case coeff.IsNegOne():
		return "-" + body
	case coeff.IsInteger():
		return coeff.String() + "*" + body
	}
	p, q := coeff.val.Num(), coeff.val.Denom()
	switch {
	case p.IsInt64() && p.Int64() == 1:
		return body + "/" + q.String()
	case p.IsInt64() && p.Int64() == -1:
		return "-" + body + "/" + q.String()
	}
	return p.String() + "*" + body + "/" + q.String()
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := N(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Pow: base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }
func SqrtOf(arg Expr) Expr      { return PowOf(arg, F(1, 2)) }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	en, expIsNum := exp.(*Num)
	if expIsNum && en.IsZero() {
		return N(1)
	}
	if expIsNum && en.IsOne() && !en.inexact {
		return base
	}

	if _, ok := base.(imagUnit); ok && expIsNum && en.IsInteger() {
		k := new(big.Int).Mod(en.val.Num(), big.NewInt(4)).Int64()
		return MulOf(PowOf(N(-1), N(k/2)), PowOf(I, N(k%2)))
	}

	if bn, ok := base.(*Num); ok {
		if bn.IsZero() {
			// 0^0 is indeterminate; 0^negative is division by zero.
			if expIsNum && en.IsNegative() {
				return &Pow{base: base, exp: exp}
			}
			return N(0)
		}
		if bn.IsOne() {
			return bn
		}
		if expIsNum {
			if en.IsInteger() && !en.inexact {
				e := en.val.Num().Int64()
				if e >= 0 && e <= 20 {
					result := N(1)
					if bn.inexact {
						result = NFloat(1)
					}
					for i := int64(0); i < e; i++ {
						result = numMul(result, bn)
					}
					return result
				}
				if e < 0 && e >= -20 {
					result := N(1)
					for i := int64(0); i < -e; i++ {
						result = numMul(result, bn)
					}
					return numRecip(result)
				}
			}
			if en.val.Cmp(big.NewRat(1, 2)) == 0 {
				return sqrtNum(bn)
			}
			if (bn.inexact || en.inexact) && !bn.IsNegative() {
				if f := math.Pow(bn.Float64(), en.Float64()); !math.IsInf(f, 0) && !math.IsNaN(f) {
					return NFloat(f)
				}
			}
		}
	}

	if expIsNum && en.IsInteger() && !en.inexact {
		if inner, ok := base.(*Pow); ok {
			return PowOf(inner.base, MulOf(inner.exp, exp))
		}
		if inner, ok := base.(*Mul); ok {
			factors := make([]Expr, len(inner.factors))
			for i, f := range inner.factors {
				factors[i] = PowOf(f, exp)
			}
			return MulOf(factors...)
		}
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) String() string {
	if en, ok := p.exp.(*Num); ok && !en.inexact && en.val.Cmp(big.NewRat(1, 2)) == 0 {
		return "sqrt(" + p.base.String() + ")"
	}
	baseStr := p.base.String()
	switch b := p.base.(type) {
	case *Add, *Mul:
		baseStr = "(" + baseStr + ")"
	case *Num:
		if b.IsNegative() || !b.IsInteger() {
			baseStr = "(" + baseStr + ")"
		}
	}
	expStr := p.exp.String()
	if en, ok := p.exp.(*Num); !ok || !en.IsInteger() || en.IsNegative() {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

func (p *Pow) Eval() (*Num, bool) {
	bn, ok := p.base.Eval()
	if !ok {
		return nil, false
	}
	en, ok := p.exp.Eval()
	if !ok {
		return nil, false
	}
	if r, ok := PowOf(bn, en).(*Num); ok {
		return r, true
	}
	return nil, false
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) Base() Expr    { return p.base }
func (p *Pow) ExpExpr() Expr { return p.exp }

// ============================================================
// Helpers
// ============================================================

// sqrtNum returns the principal square root of n. Exact inputs stay exact:
// square factors are pulled out and the remaining radical is kept symbolic.
func sqrtNum(n *Num) Expr {
	if !n.isFinite() {
		return &Pow{base: n, exp: F(1, 2)}
	}
	if n.inexact {
		f := n.Float64()
		if f >= 0 {
			return NFloat(math.Sqrt(f))
		}
		return MulOf(NFloat(math.Sqrt(-f)), I)
	}
	if n.IsNegative() {
		return MulOf(sqrtNum(numNeg(n)), I)
	}
	// sqrt(p/q) = sqrt(p*q)/q
	q := n.val.Denom()
	pq := new(big.Int).Mul(n.val.Num(), q)
	outside, inside := splitSquare(pq)
	coeff := &Num{val: new(big.Rat).SetFrac(outside, q)}
	if inside.Cmp(big.NewInt(1)) == 0 {
		return coeff
	}
	rad := &Pow{base: &Num{val: new(big.Rat).SetInt(inside)}, exp: F(1, 2)}
	if coeff.IsOne() {
		return rad
	}
	return &Mul{factors: []Expr{coeff, rad}}
}

// maxSquareTrial bounds the trial division in splitSquare.
const maxSquareTrial = 10000

// splitSquare writes n as outside^2 * inside.
func splitSquare(n *big.Int) (outside, inside *big.Int) {
	root := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(root, root).Cmp(n) == 0 {
		return root, big.NewInt(1)
	}
	outside = big.NewInt(1)
	inside = new(big.Int).Set(n)
	sq := new(big.Int)
	rem := new(big.Int)
	for k := int64(2); k <= maxSquareTrial; k++ {
		kk := big.NewInt(k)
		sq.Mul(kk, kk)
		if sq.Cmp(inside) > 0 {
			break
		}
		for {
			quo, r := new(big.Int).QuoRem(inside, sq, rem)
			if r.Sign() != 0 {
				break
			}
			inside = quo
			outside.Mul(outside, kk)
		}
	}
	return outside, inside
}

// splitCoeff separates the leading numeric factor from the rest of a term.
func splitCoeff(e Expr) (*Num, Expr) {
	m, ok := e.(*Mul)
	if !ok || len(m.factors) == 0 {
		return N(1), e
	}
	c, ok := m.factors[0].(*Num)
	if !ok {
		return N(1), e
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return c, rest[0]
	}
	return c, &Mul{factors: rest}
}

func asPow(e Expr) (base, exp Expr) {
	if p, ok := e.(*Pow); ok {
		return p.base, p.exp
	}
	return e, N(1)
}

// termDegree is the total polynomial degree of a term over its symbols.
func termDegree(e Expr) int {
	switch v := e.(type) {
	case *Sym:
		return 1
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsInteger() && termDegree(v.base) > 0 {
			return termDegree(v.base) * int(n.val.Num().Int64())
		}
	case *Mul:
		total := 0
		for _, f := range v.factors {
			total += termDegree(f)
		}
		return total
	}
	return 0
}

func termKey(e Expr) string {
	_, rest := splitCoeff(e)
	return rest.String()
}

func isNegativeTerm(e Expr) bool {
	switch v := e.(type) {
	case *Num:
		return v.IsNegative()
	case *Mul:
		if c, ok := v.factors[0].(*Num); ok {
			return c.IsNegative()
		}
	}
	return false
}

func negate(e Expr) Expr {
	if n, ok := e.(*Num); ok {
		return numNeg(n)
	}
	return MulOf(N(-1), e)
}

func factorString(f Expr) string {
	if _, isAdd := f.(*Add); isAdd {
		return "(" + f.String() + ")"
	}
	return f.String()
}

// ============================================================
// Top-level convenience functions
// ============================================================

func Simplify(e Expr) Expr { return e.Simplify() }
func String(e Expr) string { return e.String() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}
