package quadgen

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// maxPower bounds the summed power of the variable in one term.
const maxPower = math.MaxInt32

// ParseEquation reads a polynomial equation in varName. Both the generator's
// output ("1.5*X^2 -3.0*X + 2.0 = 0.5*X^2 + 1.0*X -4.0") and the
// power-explicit form ("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0") are
// accepted. Whitespace is ignored. Integer literals stay exact; any other
// number is read as a float.
func ParseEquation(s, varName string) (*Equation, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	sides := strings.Split(compact, "=")
	if len(sides) != 2 {
		return nil, parseError(s, "expected exactly one '=', found %d", len(sides)-1)
	}
	lhs, err := parseSide(sides[0], varName)
	if err != nil {
		return nil, err
	}
	rhs, err := parseSide(sides[1], varName)
	if err != nil {
		return nil, err
	}
	return Eq(lhs, rhs), nil
}

func parseSide(side, varName string) (Expr, error) {
	if side == "" {
		return nil, parseError(side, "empty side")
	}
	terms := splitTerms(side)
	exprs := make([]Expr, 0, len(terms))
	for _, t := range terms {
		e, err := parseTerm(t, varName)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return AddOf(exprs...), nil
}

// splitTerms cuts a side before every '+' or '-' that starts a new term.
// Signs in leading position, after '*' or '^', and in float exponents
// ("1e-05") stay with their term.
func splitTerms(side string) []string {
	var terms []string
	start := 0
	for i := 1; i < len(side); i++ {
		if side[i] != '+' && side[i] != '-' {
			continue
		}
		prev := side[i-1]
		if prev == '*' || prev == '^' || prev == '+' || prev == '-' {
			continue
		}
		if (prev == 'e' || prev == 'E') && i >= 2 && isNumberByte(side[i-2]) {
			continue
		}
		terms = append(terms, side[start:i])
		start = i
	}
	return append(terms, side[start:])
}

func isNumberByte(b byte) bool { return (b >= '0' && b <= '9') || b == '.' }

func parseTerm(term, varName string) (Expr, error) {
	sign := N(1)
	body := term
	switch {
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	case strings.HasPrefix(body, "-"):
		sign = N(-1)
		body = body[1:]
	}
	if body == "" {
		return nil, parseError(term, "missing value")
	}

	factors := []Expr{sign}
	power := 0
	for _, part := range strings.Split(body, "*") {
		if part == "" {
			return nil, parseError(term, "empty factor")
		}
		if strings.HasPrefix(part, varName) {
			p, err := parsePower(part, varName)
			if err != nil {
				return nil, err
			}
			if p > maxPower-power {
				return nil, parseError(term, "power too large")
			}
			power += p
			continue
		}
		n, err := parseNumber(part)
		if err != nil {
			return nil, err
		}
		factors = append(factors, n)
	}
	if power > 0 {
		factors = append(factors, PowOf(S(varName), N(int64(power))))
	}
	return MulOf(factors...), nil
}

// parsePower reads "X", "X^n" with n a non-negative integer.
func parsePower(part, varName string) (int, error) {
	rest := strings.TrimPrefix(part, varName)
	if rest == "" {
		return 1, nil
	}
	if !strings.HasPrefix(rest, "^") {
		return 0, parseError(part, "expected %s or %s^n", varName, varName)
	}
	p, err := strconv.Atoi(strings.TrimPrefix(rest[1:], "+"))
	if err != nil || p < 0 {
		return 0, parseError(part, "power must be a non-negative integer")
	}
	return p, nil
}

func parseNumber(s string) (*Num, error) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return &Num{val: new(big.Rat).SetInt(i)}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, parseError(s, "invalid number")
	}
	return NFloat(f), nil
}
