package agent

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestAgentRunExit(t *testing.T) {
	for _, input := range []string{"exit\n", "quit\n", "EXIT\n", "Quit\n"} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			var out strings.Builder
			m := &fakeModel{}
			a := New(&out, strings.NewReader(input), m, NewStockAdvisor(m, "", fakeQuotes{}), NewTaxAdvisor(m))

			if err := a.Run(context.Background()); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !strings.Contains(out.String(), "Goodbye!") {
				t.Errorf("output misses the goodbye:\n%s", out.String())
			}
			if len(m.calls) != 0 {
				t.Errorf("model called %d times on exit, want none", len(m.calls))
			}
		})
	}
}

func TestAgentRunEOF(t *testing.T) {
	var out strings.Builder
	m := &fakeModel{}
	a := New(&out, strings.NewReader(""), m, NewStockAdvisor(m, "", fakeQuotes{}), NewTaxAdvisor(m))

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() on EOF error: %v", err)
	}
}

func TestAgentRoutesTaxQuestion(t *testing.T) {
	var out strings.Builder
	m := &fakeModel{classify: "tax", answer: "consult a professional"}
	a := New(&out, strings.NewReader("how are gains taxed?\nexit\n"), m,
		NewStockAdvisor(m, "", fakeQuotes{}), NewTaxAdvisor(m))

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Assistant: consult a professional") {
		t.Errorf("output misses the tax answer:\n%s", out.String())
	}

	if len(m.calls) != 2 {
		t.Fatalf("model called %d times, want classify + answer", len(m.calls))
	}
	if m.calls[0].MaxTokens != 1 {
		t.Error("first call is not the classification")
	}
	if !strings.Contains(m.calls[1].User, "tax expert") {
		t.Errorf("second call is not the tax prompt:\n%s", m.calls[1].User)
	}
}

// A handler failure becomes the answer text; the session keeps going.
func TestAgentSurvivesHandlerFailure(t *testing.T) {
	var out strings.Builder
	m := &fakeModel{classify: "stock"}
	// The stock advisor points at a missing portfolio file.
	a := New(&out, strings.NewReader("what do I own?\nexit\n"), m,
		NewStockAdvisor(m, filepath.Join(t.TempDir(), "nope.csv"), fakeQuotes{}),
		NewTaxAdvisor(m))

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Error: could not retrieve portfolio data") {
		t.Errorf("output misses the failure message:\n%s", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("session did not continue to the exit:\n%s", output)
	}
}

func TestAgentInitialPrompts(t *testing.T) {
	var out strings.Builder
	m := &fakeModel{classify: "tax", answer: "initial answer"}
	a := New(&out, strings.NewReader("exit\n"), m,
		NewStockAdvisor(m, "", fakeQuotes{}), NewTaxAdvisor(m))

	if err := a.Run(context.Background(), "seeded question"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "You: seeded question") {
		t.Errorf("seeded question not echoed:\n%s", output)
	}
	if !strings.Contains(output, "Assistant: initial answer") {
		t.Errorf("seeded question not answered:\n%s", output)
	}
}

func TestAgentRender(t *testing.T) {
	var out strings.Builder
	m := &fakeModel{classify: "tax", answer: "plain"}
	a := New(&out, strings.NewReader("a tax question\nexit\n"), m,
		NewStockAdvisor(m, "", fakeQuotes{}), NewTaxAdvisor(m))
	a.Render = func(s string) string { return "<" + s + ">" }

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Assistant: <plain>") {
		t.Errorf("render hook not applied:\n%s", out.String())
	}
}
