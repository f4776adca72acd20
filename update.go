package advisor

import "log"

// This file contains the function to refresh the recommendation column of
// the portfolio table.

// UpdateRecommendations reads the portfolio table, computes a fresh
// recommendation for every ticker, and rewrites the whole table in place.
//
// Each ticker is handled independently: a failed fundamentals fetch records
// an "Error: ..." label for that ticker only and never aborts the batch.
// Only an unreadable or unwritable table fails the operation. The write is a
// full overwrite, so the last caller wins; the tool is single-process by
// construction.
func UpdateRecommendations(path string, src FundamentalsSource) error {
	t, err := LoadTable(path)
	if err != nil {
		return err
	}

	for i := range t.Holdings {
		ticker := t.Holdings[i].Ticker
		f := src.Fundamentals(ticker)
		if f.Err != "" {
			log.Printf("fundamentals unavailable for %q: %s", ticker, f.Err)
			t.Holdings[i].Recommendation = ErrorRecommendation(f.Err)
			continue
		}
		t.Holdings[i].Recommendation = Recommend(Score(f))
	}

	return t.Save(path)
}
