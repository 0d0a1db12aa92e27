package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/njchilds90/quadgen"
	"github.com/njchilds90/quadgen/internal/config"
	"github.com/njchilds90/quadgen/internal/log"
)

func solveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve EQUATION",
		Short: "Reduce and solve a polynomial equation of degree 2 or less",
		Example: `  quadgen solve "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
  quadgen solve "2*X^2 - 8 = 0"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.OutOrStdout(), args[0], cfg.Variable)
		},
	}
	return cmd
}

func runSolve(w io.Writer, input, varName string) error {
	eq, err := quadgen.ParseEquation(input, varName)
	if err != nil {
		return err
	}
	reduced := eq.Reduce(varName)
	degree := quadgen.Degree(reduced.LHS, varName)
	log.Debug.Printf("parsed %q as %s", input, eq)

	p := &printer{w: w}
	p.printf("Equation: %s\n", eq)
	p.printf("Reduced form: %s\n", reduced)
	p.printf("Polynomial degree: %d\n", degree)
	if p.err != nil {
		return p.err
	}

	set, err := quadgen.Solve(reduced, varName)
	if err != nil {
		return err
	}
	if set.Discriminant != nil {
		switch {
		case set.Discriminant.IsNegative():
			p.printf("Discriminant is strictly negative, the two solutions are complex.\n")
		case set.Discriminant.IsZero():
			p.printf("Discriminant is zero, the solution is a double root.\n")
		default:
			p.printf("Discriminant is strictly positive, the two solutions are real.\n")
		}
	}
	p.printf("Solutions: %s\n", set)
	return p.err
}

// printer keeps the first write error so a run of prints can be checked once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "write report")
	}
}
