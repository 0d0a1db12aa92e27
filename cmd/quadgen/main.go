// Command quadgen prints a random quadratic equation and its solutions.
//
// Usage:
//
//	quadgen                       # random equation, random seed
//	quadgen --seed 42             # replay a run
//	quadgen solve "2*X^2 - 8 = 0" # solve a given equation
package main

import (
	"github.com/njchilds90/quadgen/cmd/quadgen/commands"
	"github.com/njchilds90/quadgen/internal/config"
)

func main() {
	if err := commands.Execute(); err != nil {
		config.Exitf("quadgen: %+v", err)
	}
}
