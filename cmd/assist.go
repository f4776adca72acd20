package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }
func (*assistCmd) Usage() string {
	return `psa assist [question...]:
  Start an interactive session with the AI assistant.

  Recommendations are refreshed once at startup; every question is answered
  against the live portfolio figures. Type 'exit' or 'quit' to leave.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	market := advisor.NewEODHD()

	// Refresh the recommendation column before the session starts; a failure
	// leaves the prior recommendations in place and the session usable.
	if err := advisor.UpdateRecommendations(*portfolioFile, market); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not update recommendations:", err)
	}

	model := agent.NewGemini(client)
	a := agent.New(os.Stdout, os.Stdin, model,
		agent.NewStockAdvisor(model, *portfolioFile, market),
		agent.NewTaxAdvisor(model))
	a.Render = renderMarkdown

	if initialPrompt != "" {
		err = a.Run(ctx, initialPrompt)
	} else {
		err = a.Run(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
