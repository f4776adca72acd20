// Package agent implements the conversational layer of the assistant: a
// Gemini-backed chat model, a one-token query router, and the stock and tax
// advisors that assemble prompts from the portfolio data.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used by the assistant.
const DefaultModel = "gemini-2.5-pro"

// Request is a single completion request.
type Request struct {
	System    string // system instruction, optional
	User      string // user prompt
	MaxTokens int32  // output token cap, 0 means no cap
	Exact     bool   // deterministic sampling (temperature 0)
}

// Model abstracts the chat completion endpoint the advisors talk to.
// A completion either yields text or an explicit error, never both.
type Model interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Gemini implements Model on top of the genai client.
type Gemini struct {
	Client *genai.Client
	Name   string
}

// NewGemini returns a Model backed by the given client and the default model.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{Client: client, Name: DefaultModel}
}

func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}
	if req.Exact {
		cfg.Temperature = genai.Ptr[float32](0)
	}

	resp, err := g.Client.Models.GenerateContent(ctx, g.Name, genai.Text(req.User), cfg)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", g.Name)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
