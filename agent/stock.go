package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// StockAdvisor answers free-text questions about the portfolio.
//
// For every question it re-reads the portfolio table, valuates it against
// the quote source, and hands the figures plus the stored recommendations to
// the model as context.
type StockAdvisor struct {
	Model  Model
	File   string // portfolio table path
	Quotes advisor.QuoteSource
}

func NewStockAdvisor(m Model, file string, quotes advisor.QuoteSource) *StockAdvisor {
	return &StockAdvisor{Model: m, File: file, Quotes: quotes}
}

// Ask answers a stock-related question about the portfolio.
func (a *StockAdvisor) Ask(ctx context.Context, question string) (string, error) {
	t, err := advisor.LoadTable(a.File)
	if err != nil {
		return "", fmt.Errorf("could not retrieve portfolio data: %w", err)
	}
	v := advisor.Valuate(t.Holdings, a.Quotes)

	// Lines are emitted in table order; tickers without a price were
	// excluded from the valuation and are left out here too.
	var prices, values, recs []string
	for _, h := range t.Holdings {
		if rec := h.Recommendation; rec != "" {
			recs = append(recs, fmt.Sprintf("%s: %s", h.Ticker, rec))
		}
		price, ok := v.Prices[h.Ticker]
		if !ok {
			continue
		}
		prices = append(prices, fmt.Sprintf("%s: %s", h.Ticker, price))
		values = append(values, fmt.Sprintf("%s: %s", h.Ticker, v.Values[h.Ticker].Round()))
	}

	prompt := fmt.Sprintf(`Here is the stock data:

Stock Prices:
%s

Stock Values:
%s

Total Portfolio Value: %s

Stock Recommendations:
%s

The user has asked the following question about their portfolio:
%s

Please respond clearly and concisely.`,
		strings.Join(prices, "\n"),
		strings.Join(values, "\n"),
		v.Total,
		strings.Join(recs, "\n"),
		question)

	return a.Model.Complete(ctx, Request{User: prompt})
}
