package advisor

import "log"

// QuoteSource provides the latest closing price for a ticker.
type QuoteSource interface {
	// Price returns the latest closing price, or an error when the price is
	// unavailable for that ticker.
	Price(ticker string) (Money, error)
}

// Valuation is the market value of a portfolio at the time of the request.
// It is never persisted; its lifetime is one request.
type Valuation struct {
	// Values maps ticker to market value (price times quantity, exact).
	Values map[string]Money
	// Prices maps ticker to the latest closing price used.
	Prices map[string]Money
	// Quantities maps ticker to the number of shares held.
	Quantities map[string]Quantity
	// Total is the sum of all values, rounded to the currency fraction.
	Total Money
}

// Valuate computes the market value of each holding and the portfolio total.
//
// Tickers whose price is unavailable are excluded from all three mappings and
// from the total; this is the intended partial-success policy, not an error.
func Valuate(holdings []Holding, quotes QuoteSource) *Valuation {
	v := &Valuation{
		Values:     make(map[string]Money),
		Prices:     make(map[string]Money),
		Quantities: make(map[string]Quantity),
	}
	for _, h := range holdings {
		price, err := quotes.Price(h.Ticker)
		if err != nil {
			log.Printf("no price for %q, excluded from valuation: %v", h.Ticker, err)
			continue
		}
		value := price.Mul(h.Quantity)
		v.Prices[h.Ticker] = price
		v.Values[h.Ticker] = value
		v.Quantities[h.Ticker] = h.Quantity
		v.Total = v.Total.Add(value)
	}
	v.Total = v.Total.Round()
	return v
}
