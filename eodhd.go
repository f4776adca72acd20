package advisor

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the EODHD-backed implementations of QuoteSource and
// FundamentalsSource.

const eodhdAPIKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhdAPIKeyEnv+"\". You can get one at https://eodhd.com/")

func eodhdAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdAPIKeyEnv)
	}
	return *eodhdAPIFlag
}

// trendWindow is the trailing window over which the price trend is averaged.
const trendWindow = 182 * 24 * time.Hour // ~6 months

// EODHD serves latest quotes and fundamentals snapshots from eodhd.com.
//
// It implements both QuoteSource and FundamentalsSource. All requests go
// through the daily-expiring disk cache, so a full portfolio refresh hits
// the network at most once a day per ticker.
type EODHD struct {
	Key      string
	Currency string // currency quotes are reported in

	baseURL string       // overridden in tests
	client  *http.Client // overridden in tests
}

// NewEODHD returns an EODHD source quoting in USD, with the API key taken
// from the -eodhd-api-key flag or the EODHD_API_KEY environment variable.
func NewEODHD() *EODHD {
	return &EODHD{
		Key:      eodhdAPIKey(),
		Currency: "USD",
		baseURL:  "https://eodhd.com",
		client:   daily(),
	}
}

// Price returns the latest closing price for the given ticker.
//
// It queries the end-of-day endpoint over the last week and keeps the most
// recent close, so it works across weekends and market holidays.
func (e *EODHD) Price(ticker string) (Money, error) {
	to := time.Now()
	from := to.Add(-7 * 24 * time.Hour)
	closes, err := e.closes(ticker, from, to)
	if err != nil {
		return Money{}, err
	}
	if len(closes) == 0 {
		return Money{}, fmt.Errorf("no recent close for %q on eodhd.com", ticker)
	}
	return M(closes[len(closes)-1], e.Currency), nil
}

// Fundamentals returns the fundamentals snapshot for the given ticker.
// Any fetch failure is reported in the snapshot's Err field.
func (e *EODHD) Fundamentals(ticker string) Fundamentals {
	f := Fundamentals{Ticker: ticker}

	price, err := e.Price(ticker)
	if err != nil {
		f.Err = fmt.Sprintf("failed to fetch data: %v", err)
		return f
	}
	f.CurrentPrice = price.AsFloat()

	// The fundamentals endpoint returns one large loosely-typed document;
	// scalar highlights are plucked by path.
	addr := fmt.Sprintf("%s/api/fundamentals/%s?fmt=json&api_token=%s", e.baseURL, ticker, e.Key)
	var doc any
	if err := jwget(e.client, addr, &doc); err != nil {
		f.Err = fmt.Sprintf("failed to fetch data: %v", err)
		return f
	}

	f.TargetMeanPrice = jfloat(doc, "$.Highlights.WallStreetTargetPrice")
	f.PriceToBook = jfloat(doc, "$.Valuation.PriceBookMRQ")
	f.ReturnOnEquity = jfloat(doc, "$.Highlights.ReturnOnEquityTTM")

	// Debt over equity from the most recent quarterly balance sheet.
	// Equity defaults to 1 and debt to 0 when the statement is missing.
	totalDebt, totalEquity := 0.0, 1.0
	if quarter := latestQuarter(doc); quarter != nil {
		if d := jfloat(quarter, "$.shortLongTermDebtTotal"); d != 0 {
			totalDebt = d
		}
		if q := jfloat(quarter, "$.totalStockholderEquity"); q != 0 {
			totalEquity = q
		}
	}
	f.DebtToEquity = totalDebt / totalEquity

	f.PriceTrend = e.trend(ticker)
	return f
}

// trend returns the mean fractional day-over-day change of the closing price
// over the trailing window, or 0 when there is not enough history.
func (e *EODHD) trend(ticker string) float64 {
	to := time.Now()
	closes, err := e.closes(ticker, to.Add(-trendWindow), to)
	if err != nil || len(closes) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1].InexactFloat64()
		if prev == 0 {
			return 0
		}
		sum += (closes[i].InexactFloat64() - prev) / prev
	}
	return sum / float64(len(closes)-1)
}

// closes returns the daily adjusted closes for a ticker, oldest first.
func (e *EODHD) closes(ticker string, from, to time.Time) ([]decimal.Decimal, error) {
	// https://eodhd.com/api/eod/NVDA.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		e.baseURL, ticker, e.Key, from.Format("2006-01-02"), to.Format("2006-01-02"))

	type info struct {
		Date  string          `json:"date"`
		Close decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := jwget(e.client, addr, &content); err != nil {
		return nil, err
	}

	closes := make([]decimal.Decimal, 0, len(content))
	for _, i := range content {
		closes = append(closes, i.Close)
	}
	return closes, nil
}

// jfloat plucks a numeric value out of a loosely-typed JSON document.
// It returns 0 when the path is absent or the value is not a number, which
// matches the "0 if unknown" convention of the Fundamentals snapshot.
func jfloat(doc any, path string) float64 {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v
	case string:
		// Balance sheet figures come back as strings.
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// latestQuarter returns the most recent quarterly balance sheet of a
// fundamentals document, or nil when there is none. The quarterly statements
// are keyed by date, so the lexically greatest key is the latest.
func latestQuarter(doc any) any {
	jval, err := jsonpath.Get("$.Financials.Balance_Sheet.quarterly", doc)
	if err != nil {
		return nil
	}
	quarters, ok := jval.(map[string]any)
	if !ok {
		return nil
	}
	latest := ""
	for day := range quarters {
		if day > latest {
			latest = day
		}
	}
	if latest == "" {
		return nil
	}
	return quarters[latest]
}
