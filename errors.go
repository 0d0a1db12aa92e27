package quadgen

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedDegree is returned for polynomials above degree two.
	ErrUnsupportedDegree = errors.New("polynomial degree is strictly greater than 2")
	// ErrNotPolynomial is returned when the variable appears with a negative
	// or non-integer power.
	ErrNotPolynomial = errors.New("equation is not a polynomial in the variable")
	// ErrNonNumeric is returned when a coefficient still holds a symbol.
	ErrNonNumeric = errors.New("coefficients must be numeric")
	// ErrInvalidRange is returned for sampling ranges that cannot be drawn from.
	ErrInvalidRange = errors.New("invalid sampling range")
	// ErrOverflow is returned when a float coefficient or root does not fit
	// a float64.
	ErrOverflow = errors.New("value is outside the float64 range")
)

// GenerationError reports a failure while drawing coefficients.
type GenerationError struct {
	err error
}

func (e *GenerationError) Error() string { return "generate: " + e.err.Error() }
func (e *GenerationError) Cause() error  { return e.err }
func (e *GenerationError) Unwrap() error { return e.err }

func (e *GenerationError) Format(s fmt.State, verb rune) { formatError(s, verb, "generate", e) }

// SolveError reports an equation the solver cannot handle.
type SolveError struct {
	Equation string
	err      error
}

func (e *SolveError) Error() string { return "solve " + e.Equation + ": " + e.err.Error() }
func (e *SolveError) Cause() error  { return e.err }
func (e *SolveError) Unwrap() error { return e.err }

func (e *SolveError) Format(s fmt.State, verb rune) { formatError(s, verb, "solve "+e.Equation, e) }

// ParseError reports malformed equation text. Fragment is the part of the
// input that was rejected.
type ParseError struct {
	Fragment string
	err      error
}

func (e *ParseError) Error() string { return "parse " + e.Fragment + ": " + e.err.Error() }
func (e *ParseError) Cause() error  { return e.err }
func (e *ParseError) Unwrap() error { return e.err }

func (e *ParseError) Format(s fmt.State, verb rune) { formatError(s, verb, "parse "+e.Fragment, e) }

type causer interface {
	error
	Cause() error
}

// formatError prints the error message, and with %+v the op followed by the
// cause's stack trace.
func formatError(s fmt.State, verb rune, op string, e causer) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", op, e.Cause())
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// GenerationErrorf builds a GenerationError for callers that draw their own
// randomness, such as seed acquisition.
func GenerationErrorf(err error, format string, args ...interface{}) error {
	return &GenerationError{err: errors.Wrapf(err, format, args...)}
}

func solveErrorf(eq *Equation, cause error, format string, args ...interface{}) error {
	return &SolveError{Equation: eq.String(), err: errors.Wrapf(cause, format, args...)}
}

func parseError(fragment string, format string, args ...interface{}) error {
	return &ParseError{Fragment: quoteFragment(fragment), err: errors.Errorf(format, args...)}
}

func quoteFragment(s string) string {
	if s == "" {
		return `""`
	}
	return `"` + s + `"`
}
