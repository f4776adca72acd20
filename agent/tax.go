package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/advisor"
)

// TaxAdvisor answers free-text tax questions and analyses tax-efficient
// selling strategies over the portfolio's recommendations.
type TaxAdvisor struct {
	Model Model
}

func NewTaxAdvisor(m Model) *TaxAdvisor {
	return &TaxAdvisor{Model: m}
}

// Fixed responses returned without calling the model.
const (
	NoDataMsg            = "No sufficient data available for tax analysis."
	NothingToEvaluateMsg = "No Sell, Hold, or Buy stocks found to evaluate."
)

// Ask answers a general tax question.
func (a *TaxAdvisor) Ask(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(`You are a tax expert with deep knowledge of stock taxation.
The user has a tax-related question:

%s

Provide a clear and accurate answer, following best tax practices.`, question)

	return a.Model.Complete(ctx, Request{User: prompt})
}

// AnalyseSellingStrategy asks the model for the most tax-efficient way to
// sell positions.
//
// Positions recommended for selling take priority; when there are none, the
// Hold and Buy positions are evaluated instead. Emptiness of the
// recommendations is checked before the Sell/Hold/Buy filter, so the two
// no-call responses stay distinguishable.
func (a *TaxAdvisor) AnalyseSellingStrategy(ctx context.Context, recommendations map[string]advisor.Recommendation, details map[string]advisor.StockDetail) (string, error) {
	if len(recommendations) == 0 || len(details) == 0 {
		return NoDataMsg, nil
	}

	sellStocks := filterByStatus(recommendations, advisor.Sell)

	var prompt string
	if len(sellStocks) > 0 {
		prompt = fmt.Sprintf(`You are a tax consultant specializing in capital gains tax strategies.
The user has the following stocks recommended for selling:

%s

Suggest the most tax-efficient way to sell these stocks, considering:
- Long-term vs short-term capital gains taxes
- FIFO vs LIFO strategies
- Any potential tax loss harvesting opportunities

Provide a detailed recommendation.`, stockDetails(sellStocks, details))
	} else {
		fallback := filterByStatus(recommendations, advisor.Hold, advisor.Buy)
		if len(fallback) == 0 {
			return NothingToEvaluateMsg, nil
		}
		prompt = fmt.Sprintf(`No stocks are explicitly marked for selling, but the user may need to liquidate assets.

The following stocks are marked as Hold/Buy:
%s

Recommend which, if any, could be sold in a tax-efficient manner, considering:
- Harvesting losses to offset gains
- Optimizing for long-term capital gains
- FIFO vs LIFO strategies

Provide a detailed recommendation.`, stockDetails(fallback, details))
	}

	return a.Model.Complete(ctx, Request{User: prompt})
}

// filterByStatus returns the tickers whose recommendation is one of the
// given statuses, sorted for deterministic prompts.
func filterByStatus(recommendations map[string]advisor.Recommendation, statuses ...advisor.Recommendation) []string {
	var tickers []string
	for ticker, rec := range recommendations {
		for _, status := range statuses {
			if rec == status {
				tickers = append(tickers, ticker)
				break
			}
		}
	}
	sort.Strings(tickers)
	return tickers
}

// stockDetails formats one "bought at / held for" line per ticker.
func stockDetails(tickers []string, details map[string]advisor.StockDetail) string {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	lines := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		d := details[ticker]
		lines = append(lines, fmt.Sprintf("%s: Bought at %s | Held for %s months",
			ticker, orNA(d.BuyPrice), orNA(d.HoldingMonths)))
	}
	return strings.Join(lines, "\n")
}
