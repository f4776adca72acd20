package agent

import (
	"context"
	"log"
	"strings"
)

// Topic is the kind of question the router recognizes.
type Topic string

const (
	TopicStock Topic = "stock"
	TopicTax   Topic = "tax"
)

const classifierInstruction = "You are a classifier that determines whether a user query is about stocks or taxes. " +
	"Only respond with 'stock' or 'tax'."

// Classify asks the model for a single deterministic token and routes on it.
//
// This is a best-effort heuristic: an ambiguous question resolves to
// whichever label the model token happens to contain, and a failed
// classification falls back to the stock topic.
func Classify(ctx context.Context, m Model, question string) Topic {
	token, err := m.Complete(ctx, Request{
		System:    classifierInstruction,
		User:      question,
		MaxTokens: 1,
		Exact:     true,
	})
	if err != nil {
		log.Printf("classifier failed, defaulting to %s: %v", TopicStock, err)
		return TopicStock
	}
	return topicOf(token)
}

// topicOf matches the raw model token to a topic.
func topicOf(token string) Topic {
	if strings.Contains(strings.ToLower(token), "tax") {
		return TopicTax
	}
	return TopicStock
}
