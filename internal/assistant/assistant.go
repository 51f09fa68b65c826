package assistant

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"studydesk/internal/model"
)

// SourceDecider picks the provenance of an assistant answer. hasDocument
// is true when the chat has a document attached; implementations must
// return SourceWeb when it is false.
type SourceDecider func(hasDocument bool) model.Source

// BiasedDecider answers from the attached document with probability
// pdfBias, otherwise from the web. Without a document it is always web.
func BiasedDecider(pdfBias float64) SourceDecider {
	return func(hasDocument bool) model.Source {
		if hasDocument && rand.Float64() < pdfBias {
			return model.SourcePDF
		}
		return model.SourceWeb
	}
}

type Reply struct {
	Content string
	Source  model.Source
}

type Responder interface {
	Respond(ctx context.Context, question string, doc *model.Document) (*Reply, error)
}

// Simulated frames answers as document-derived or web-derived without a
// real NLP backend. The web branch folds in a simulated search snippet,
// the document branch a simulated entity analysis of the document text.
type Simulated struct {
	decide   SourceDecider
	searcher *WebSearcher
	analyzer *Analyzer
}

func NewSimulated(decide SourceDecider, searcher *WebSearcher, analyzer *Analyzer) *Simulated {
	return &Simulated{
		decide:   decide,
		searcher: searcher,
		analyzer: analyzer,
	}
}

func (s *Simulated) Respond(ctx context.Context, question string, doc *model.Document) (*Reply, error) {
	source := s.decide(doc != nil)
	if doc == nil {
		source = model.SourceWeb
	}

	if source == model.SourcePDF {
		analysis, err := s.analyzer.Analyze(ctx, doc.Content)
		if err != nil {
			return nil, err
		}
		content := fmt.Sprintf(
			"Based on the document %q, the answer to your question is: this passage covers %s. "+
				"A production deployment would run the extracted text through an NLP pipeline to locate the exact answer.",
			doc.Name,
			strings.Join(analysis.Entities, ", "),
		)
		return &Reply{Content: content, Source: model.SourcePDF}, nil
	}

	results, err := s.searcher.Search(ctx, question)
	if err != nil {
		return nil, err
	}
	snippet := "no results found"
	if len(results) > 0 {
		snippet = results[0].Snippet
	}
	content := fmt.Sprintf(
		"I couldn't find the exact answer in your uploaded documents. Based on web search: %s",
		snippet,
	)
	return &Reply{Content: content, Source: model.SourceWeb}, nil
}
