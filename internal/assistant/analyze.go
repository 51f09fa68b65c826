package assistant

import (
	"context"
	"time"
)

type TextAnalysis struct {
	Relevance float64  `json:"relevance"`
	Sentiment float64  `json:"sentiment"`
	Entities  []string `json:"entities"`
}

// Analyzer stands in for a natural-language analysis backend.
type Analyzer struct {
	delay time.Duration
}

func NewAnalyzer(delay time.Duration) *Analyzer {
	return &Analyzer{delay: delay}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*TextAnalysis, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(a.delay):
	}

	return &TextAnalysis{
		Relevance: 0.85,
		Sentiment: 0.6,
		Entities:  []string{"Learning", "Education", "Research"},
	}, nil
}
