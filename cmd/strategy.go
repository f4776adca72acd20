package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type strategyCmd struct{}

func (*strategyCmd) Name() string { return "strategy" }
func (*strategyCmd) Synopsis() string {
	return "suggest a tax-efficient selling strategy for the portfolio"
}
func (*strategyCmd) Usage() string {
	return `psa strategy

  Analyses the portfolio's recommendations and purchase details (BuyPrice and
  HoldingMonths columns) and asks the assistant for the most tax-efficient
  way to sell. Positions recommended for selling take priority; otherwise the
  Hold/Buy positions are evaluated.
`
}

func (*strategyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *strategyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := advisor.LoadTable(*portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	tax := agent.NewTaxAdvisor(agent.NewGemini(client))
	answer, err := tax.AnalyseSellingStrategy(ctx, t.Recommendations(), t.Details())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analysing selling strategy: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
