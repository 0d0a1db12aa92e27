package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/njchilds90/quadgen"
	"github.com/njchilds90/quadgen/internal/config"
	"github.com/njchilds90/quadgen/internal/log"
	"github.com/njchilds90/quadgen/internal/random"
)

// Execute runs the quadgen command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		cfg      config.Config
		seed     int64
		logLevel string
	)

	root := &cobra.Command{
		Use:           "quadgen",
		Short:         "Generate a random quadratic equation and solve it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				loaded.Seed = seed
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = logLevel
			}
			if err := log.SetLevelByName(loaded.LogLevel); err != nil {
				return err
			}
			cfg = loaded
			log.Debug.Printf("config: seed=%d range=[%v, %v] variable=%s", cfg.Seed, cfg.Min, cfg.Max, cfg.Variable)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), cfg)
		},
	}

	root.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for the coefficient generator (0 picks a random seed)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, error or disabled")

	root.AddCommand(solveCmd(&cfg))
	return root
}

// runGenerate draws coefficients, prints the equation, solves the reduced
// form and prints the solution set.
func runGenerate(w io.Writer, cfg config.Config) error {
	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return quadgen.GenerationErrorf(err, "seed generator")
	}
	log.Info.Printf("seed %d", seed)

	coeffs := quadgen.Sample(rng, cfg.Range())
	log.Debug.Printf("coefficients: %v", coeffs.Values())

	if _, err := fmt.Fprintf(w, "Equation: %s\n", quadgen.FormatEquation(coeffs, cfg.Variable)); err != nil {
		return errors.Wrap(err, "write equation")
	}

	reduced := coeffs.Reduced(cfg.Variable)
	log.Debug.Printf("reduced form: %s", reduced)
	set, err := quadgen.Solve(reduced, cfg.Variable)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solutions: %s\n", set); err != nil {
		return errors.Wrap(err, "write solutions")
	}
	return nil
}
