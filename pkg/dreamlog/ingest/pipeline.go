package ingest

import (
	"github.com/cognicore/dreamlog/pkg/dreamlog/lexicon"
)

// Pipeline orchestrates the text flow:
// text → tokenization → equivalence normalization
type Pipeline struct {
	tokenizer *Tokenizer
	lexicon   *lexicon.Lexicon
}

// NewPipeline creates a pipeline. A nil lexicon leaves tokens unchanged.
func NewPipeline(tokenizer *Tokenizer, lex *lexicon.Lexicon) *Pipeline {
	if lex == nil {
		lex = lexicon.New()
	}
	return &Pipeline{
		tokenizer: tokenizer,
		lexicon:   lex,
	}
}

// ProcessedText holds the surface tokens of a text and their normalized forms.
// Surface[i] normalizes to Normalized[i].
type ProcessedText struct {
	Surface    []string
	Normalized []string
}

// Process tokenizes text and normalizes every token.
func (p *Pipeline) Process(text string) ProcessedText {
	surface := p.tokenizer.Tokenize(text)
	normalized := make([]string, len(surface))
	for i, w := range surface {
		normalized[i] = p.lexicon.Normalize(w)
	}
	return ProcessedText{
		Surface:    surface,
		Normalized: normalized,
	}
}

// Tokenizer returns the pipeline tokenizer.
func (p *Pipeline) Tokenizer() *Tokenizer {
	return p.tokenizer
}
