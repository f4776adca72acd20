package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the current market value of the portfolio" }
func (*valueCmd) Usage() string {
	return `psa value

  Fetches the latest closing price for every ticker in the portfolio file and
  prints per-ticker values and the portfolio total. Tickers without an
  available price are left out of the report.
`
}

func (*valueCmd) SetFlags(_ *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := advisor.LoadTable(*portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	v := advisor.Valuate(t.Holdings, advisor.NewEODHD())
	printMarkdown(valuationMarkdown(t, v))
	return subcommands.ExitSuccess
}

// valuationMarkdown renders a valuation as a markdown report, in table order.
func valuationMarkdown(t *advisor.Table, v *advisor.Valuation) string {
	var b strings.Builder
	b.WriteString("# Portfolio Value\n\n")
	b.WriteString("| Ticker | Quantity | Price | Value | Recommendation |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, h := range t.Holdings {
		price, ok := v.Prices[h.Ticker]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			h.Ticker, h.Quantity, price, v.Values[h.Ticker].Round(), h.Recommendation)
	}
	fmt.Fprintf(&b, "\nTotal: **%s**\n", v.Total)
	return b.String()
}
