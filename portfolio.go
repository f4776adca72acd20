package advisor

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// The portfolio table is the sole persisted state: a CSV file with a Ticker
// and a Quantity column, plus the columns maintained by the tools (the
// Recommendation written by UpdateRecommendations, and the optional purchase
// details used by the tax strategy analysis). It is read and rewritten in
// place, preserving row order.

// Holding is one row of the portfolio table.
type Holding struct {
	Ticker         string
	Quantity       Quantity
	Recommendation Recommendation

	// Optional purchase details, blank when unknown.
	BuyPrice      string // purchase price per share, as typed by the user
	HoldingMonths string // holding period in months
}

// Table holds the portfolio rows in file order.
type Table struct {
	Holdings []Holding
}

// column headers of the portfolio table.
const (
	colTicker         = "Ticker"
	colQuantity       = "Quantity"
	colRecommendation = "Recommendation"
	colBuyPrice       = "BuyPrice"
	colHoldingMonths  = "HoldingMonths"
)

// LoadTable reads the portfolio table from a CSV file.
//
// Ticker and Quantity columns are required; their absence is a validation
// error. Recommendation, BuyPrice and HoldingMonths columns are optional.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse portfolio file %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("portfolio file %q is empty, expected a header row", path)
	}

	// Locate columns by header name.
	index := make(map[string]int)
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	iTicker, okTicker := index[colTicker]
	iQuantity, okQuantity := index[colQuantity]
	if !okTicker || !okQuantity {
		return nil, fmt.Errorf("portfolio file %q must contain %q and %q columns", path, colTicker, colQuantity)
	}

	field := func(row []string, i int, ok bool) string {
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	iRec, okRec := index[colRecommendation]
	iBuy, okBuy := index[colBuyPrice]
	iMonths, okMonths := index[colHoldingMonths]

	t := &Table{}
	for n, row := range records[1:] {
		ticker := field(row, iTicker, true)
		if ticker == "" {
			return nil, fmt.Errorf("portfolio file %q row %d: empty ticker", path, n+2)
		}
		qty, err := ParseQuantity(field(row, iQuantity, true))
		if err != nil {
			return nil, fmt.Errorf("portfolio file %q row %d: invalid quantity: %w", path, n+2, err)
		}
		if !qty.IsPositive() {
			return nil, fmt.Errorf("portfolio file %q row %d: quantity must be positive", path, n+2)
		}
		t.Holdings = append(t.Holdings, Holding{
			Ticker:         ticker,
			Quantity:       qty,
			Recommendation: Recommendation(field(row, iRec, okRec)),
			BuyPrice:       field(row, iBuy, okBuy),
			HoldingMonths:  field(row, iMonths, okMonths),
		})
	}
	return t, nil
}

// Save rewrites the whole portfolio table to the given path, in canonical
// column order, preserving row order. Prior recommendations are overwritten.
func (t *Table) Save(path string) error {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{colTicker, colQuantity, colRecommendation, colBuyPrice, colHoldingMonths})
	for _, h := range t.Holdings {
		w.Write([]string{h.Ticker, h.Quantity.String(), string(h.Recommendation), h.BuyPrice, h.HoldingMonths})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot encode portfolio table: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", path, err)
	}
	return nil
}

// Recommendations returns the ticker to recommendation mapping of the table.
func (t *Table) Recommendations() map[string]Recommendation {
	recs := make(map[string]Recommendation, len(t.Holdings))
	for _, h := range t.Holdings {
		recs[h.Ticker] = h.Recommendation
	}
	return recs
}

// Details returns the per-ticker purchase details of the table.
func (t *Table) Details() map[string]StockDetail {
	details := make(map[string]StockDetail, len(t.Holdings))
	for _, h := range t.Holdings {
		if h.BuyPrice == "" && h.HoldingMonths == "" {
			continue
		}
		details[h.Ticker] = StockDetail{BuyPrice: h.BuyPrice, HoldingMonths: h.HoldingMonths}
	}
	return details
}

// StockDetail holds the purchase details of one position, for tax analysis.
// Fields are kept as typed by the user; blank means unknown.
type StockDetail struct {
	BuyPrice      string
	HoldingMonths string
}
