package advisor

// Fundamentals is a snapshot of the financial ratios of one security,
// captured at fetch time. Zero values mean unknown; a non-empty Err marker
// supersedes every other field.
type Fundamentals struct {
	Ticker          string
	CurrentPrice    float64 // latest price, 0 if unknown
	TargetMeanPrice float64 // analyst consensus target, 0 if unknown
	PriceToBook     float64 // 0 if unknown or non-meaningful
	ReturnOnEquity  float64 // fractional, 0 if unknown
	DebtToEquity    float64 // totalDebt / totalEquity
	PriceTrend      float64 // mean fractional day-over-day change over ~6 months

	Err string // non-empty when the fetch failed; forces score 0
}

// FundamentalsSource provides a fundamentals snapshot for a ticker.
// A failed lookup is reported in the snapshot's Err field, never as a panic
// or a bare error: one ticker's failure must not abort a batch.
type FundamentalsSource interface {
	Fundamentals(ticker string) Fundamentals
}

// Recommendation is the advice label attached to one holding.
type Recommendation string

const (
	Buy  Recommendation = "Buy"
	Hold Recommendation = "Hold"
	Sell Recommendation = "Sell"
)

// ErrorRecommendation returns the label recorded when fundamentals could not
// be fetched for a ticker.
func ErrorRecommendation(msg string) Recommendation {
	return Recommendation("Error: " + msg)
}

// Score assigns an integer score to a fundamentals snapshot.
//
// Each metric is evaluated independently and its band contribution is summed;
// there is no short-circuiting between metrics, and the result may be
// negative. A snapshot with an error marker or without a current price
// scores 0.
func Score(f Fundamentals) int {
	if f.Err != "" || f.CurrentPrice == 0 {
		return 0
	}

	score := 0

	// Upside potential: price vs analyst target.
	if f.TargetMeanPrice > 0 && f.CurrentPrice > 0 {
		upside := (f.TargetMeanPrice - f.CurrentPrice) / f.CurrentPrice
		switch {
		case upside > 0.3:
			score += 6
		case upside > 0.2:
			score += 5
		case upside > 0.1:
			score += 3
		case upside > 0.05:
			score += 2
		}
	}

	// Price-to-book ratio.
	if f.PriceToBook > 0 {
		switch {
		case f.PriceToBook < 1:
			score += 5
		case f.PriceToBook < 2:
			score += 4
		case f.PriceToBook < 3:
			score += 2
		default:
			score--
		}
	}

	// Return on equity.
	if f.ReturnOnEquity > 0 {
		switch {
		case f.ReturnOnEquity > 0.2:
			score += 5
		case f.ReturnOnEquity > 0.15:
			score += 4
		case f.ReturnOnEquity > 0.1:
			score += 3
		default:
			score--
		}
	}

	// Debt-to-equity ratio, always evaluated.
	switch {
	case f.DebtToEquity < 1:
		score += 3
	case f.DebtToEquity < 1.5:
		score += 2
	case f.DebtToEquity < 2.5:
		score++
	default:
		score -= 2
	}

	// Historical price trend.
	if f.PriceTrend != 0 {
		switch {
		case f.PriceTrend > 0.03:
			score += 4
		case f.PriceTrend > -0.01:
			score += 2
		default:
			score -= 2
		}
	}

	return score
}

// Recommend maps a score to a recommendation label.
func Recommend(score int) Recommendation {
	switch {
	case score >= 12:
		// Same label as the band below, kept as its own band: the Buy
		// cutoff may be re-split when the weights are recalibrated.
		return Buy
	case score >= 8:
		return Buy
	case score >= 5:
		return Hold
	default:
		return Sell
	}
}
