package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh the recommendation column of the portfolio" }
func (*updateCmd) Usage() string {
	return `psa update

  Fetches fundamentals for every ticker in the portfolio file, scores them,
  and rewrites the file with a fresh Buy/Hold/Sell recommendation per row.
  A ticker whose data cannot be fetched gets an "Error: ..." label; the
  other rows are still updated.
`
}

func (*updateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := advisor.UpdateRecommendations(*portfolioFile, advisor.NewEODHD()); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating recommendations: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock recommendations updated in %s\n", *portfolioFile)
	return subcommands.ExitSuccess
}
