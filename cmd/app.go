// Package cmd implements the CLI application of the portfolio stock
// assistant.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&assistCmd{}, "assistant")
	c.Register(&updateCmd{}, "portfolio")
	c.Register(&valueCmd{}, "portfolio")
	c.Register(&strategyCmd{}, "portfolio")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "stock_portfolio.csv", "Path to the portfolio file (CSV format with Ticker and Quantity columns)")
