package advisor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTable is a helper to create a portfolio file in a temp dir.
func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock_portfolio.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeTable(t, "Ticker,Quantity,Recommendation\nAAPL,10,Buy\nGOOG,3.5,\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error: %v", err)
	}
	if len(table.Holdings) != 2 {
		t.Fatalf("got %d holdings, want 2", len(table.Holdings))
	}
	if h := table.Holdings[0]; h.Ticker != "AAPL" || !h.Quantity.Equal(Q(10)) || h.Recommendation != Buy {
		t.Errorf("first holding = %+v", h)
	}
	if h := table.Holdings[1]; h.Ticker != "GOOG" || !h.Quantity.Equal(Q(3.5)) || h.Recommendation != "" {
		t.Errorf("second holding = %+v", h)
	}
}

func TestLoadTableValidation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing ticker column", "Symbol,Quantity\nAAPL,10\n"},
		{"missing quantity column", "Ticker,Recommendation\nAAPL,Buy\n"},
		{"empty file", ""},
		{"empty ticker", "Ticker,Quantity\n,10\n"},
		{"invalid quantity", "Ticker,Quantity\nAAPL,ten\n"},
		{"negative quantity", "Ticker,Quantity\nAAPL,-3\n"},
		{"zero quantity", "Ticker,Quantity\nAAPL,0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTable(t, tc.content)
			if _, err := LoadTable(path); err == nil {
				t.Errorf("LoadTable(%q) succeeded, want error", tc.content)
			}
		})
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("LoadTable on a missing file succeeded, want error")
	}
}

func TestSavePreservesRowOrder(t *testing.T) {
	path := writeTable(t, "Ticker,Quantity\nZZZ,1\nAAA,2\nMMM,3\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	table.Holdings[1].Recommendation = Hold
	if err := table.Save(path); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	want := []string{
		"Ticker,Quantity,Recommendation,BuyPrice,HoldingMonths",
		"ZZZ,1,,,",
		"AAA,2,Hold,,",
		"MMM,3,,,",
	}
	if len(lines) != len(want) {
		t.Fatalf("saved %d lines, want %d:\n%s", len(lines), len(want), content)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	path := writeTable(t, "Ticker,Quantity,Recommendation,BuyPrice,HoldingMonths\nAAPL,10,Buy,120.5,14\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := table.Save(path); err != nil {
		t.Fatal(err)
	}
	again, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(again.Holdings))
	}
	if h := again.Holdings[0]; h.BuyPrice != "120.5" || h.HoldingMonths != "14" {
		t.Errorf("purchase details lost in round trip: %+v", h)
	}
}

func TestTableMappings(t *testing.T) {
	table := &Table{Holdings: []Holding{
		{Ticker: "AAPL", Quantity: Q(10), Recommendation: Buy, BuyPrice: "120.5", HoldingMonths: "14"},
		{Ticker: "GOOG", Quantity: Q(3), Recommendation: Sell},
	}}

	recs := table.Recommendations()
	if len(recs) != 2 || recs["AAPL"] != Buy || recs["GOOG"] != Sell {
		t.Errorf("Recommendations() = %v", recs)
	}

	details := table.Details()
	if len(details) != 1 {
		t.Fatalf("Details() = %v, want only the row with purchase details", details)
	}
	if d := details["AAPL"]; d.BuyPrice != "120.5" || d.HoldingMonths != "14" {
		t.Errorf("Details()[AAPL] = %+v", d)
	}
}
