package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Agent is the assistant REPL: it reads a question, routes it to the stock
// or tax advisor, and prints the answer.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	model Model
	stock *StockAdvisor
	tax   *TaxAdvisor

	// Render transforms an answer before printing, e.g. markdown to ANSI.
	// nil leaves answers untouched.
	Render func(string) string
}

// New creates a new Agent.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), an
// io.Reader for user input (e.g., os.Stdin), the routing model and the two
// advisors.
func New(w io.Writer, r io.Reader, m Model, stock *StockAdvisor, tax *TaxAdvisor) *Agent {
	return &Agent{
		w:     w,
		r:     bufio.NewReader(r),
		model: m,
		stock: stock,
		tax:   tax,
	}
}

// Run starts the interactive REPL session for the agent.
//
// Initial prompts are answered before reading from the input. The loop never
// terminates on a data or network error; only 'exit', 'quit' or EOF end it.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to the Stock Portfolio Assistant!")
	fmt.Fprintln(a.w, "Ask any stock or tax-related question. Type 'exit' to quit.")
	fmt.Fprintln(a.w)

	for {
		fmt.Fprint(a.w, "You: ")
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Fprintln(a.w, "Goodbye!")
			return nil
		}

		fmt.Fprintf(a.w, "\nAssistant: %s\n\n", a.answer(ctx, input))
	}
}

// answer routes one question and renders the response. Failures become the
// answer text so the session keeps going.
func (a *Agent) answer(ctx context.Context, question string) string {
	var response string
	var err error
	switch Classify(ctx, a.model, question) {
	case TopicTax:
		response, err = a.tax.Ask(ctx, question)
	default:
		response, err = a.stock.Ask(ctx, question)
	}
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.Render != nil {
		return a.Render(response)
	}
	return response
}
