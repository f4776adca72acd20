package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/advisor"
)

// fakeQuotes serves fixed prices; absent tickers are unavailable.
type fakeQuotes map[string]float64

func (q fakeQuotes) Price(ticker string) (advisor.Money, error) {
	p, ok := q[ticker]
	if !ok {
		return advisor.Money{}, fmt.Errorf("no price for %q", ticker)
	}
	return advisor.M(p, "USD"), nil
}

func writePortfolio(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock_portfolio.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStockAsk(t *testing.T) {
	path := writePortfolio(t, "Ticker,Quantity,Recommendation\nAAPL,10,Buy\nGOOG,3,Sell\nMISSING,5,Hold\n")
	m := &fakeModel{answer: "looks healthy"}
	stock := NewStockAdvisor(m, path, fakeQuotes{"AAPL": 150, "GOOG": 100})

	got, err := stock.Ask(context.Background(), "Which position is largest?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "looks healthy" {
		t.Errorf("Ask() = %q", got)
	}
	if len(m.calls) != 1 {
		t.Fatalf("model called %d times, want 1", len(m.calls))
	}

	prompt := m.calls[0].User
	for _, want := range []string{
		"AAPL: $150.00",
		"AAPL: $1,500.00",
		"GOOG: $300.00",
		"Total Portfolio Value: $1,800.00",
		"AAPL: Buy",
		"GOOG: Sell",
		"MISSING: Hold",
		"Which position is largest?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt misses %q:\n%s", want, prompt)
		}
	}
	// The unpriceable ticker keeps its recommendation line but no figures.
	if strings.Contains(prompt, "MISSING: $") {
		t.Errorf("prompt carries figures for an unpriced ticker:\n%s", prompt)
	}
}

func TestStockAskUnreadablePortfolio(t *testing.T) {
	m := &fakeModel{answer: "unused"}
	stock := NewStockAdvisor(m, filepath.Join(t.TempDir(), "nope.csv"), fakeQuotes{})

	if _, err := stock.Ask(context.Background(), "anything"); err == nil {
		t.Fatal("Ask() succeeded without a portfolio file")
	}
	if len(m.calls) != 0 {
		t.Errorf("model called %d times, want none", len(m.calls))
	}
}
