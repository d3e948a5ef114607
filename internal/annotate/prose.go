// Package annotate provides sentence segmentation, tokenization and part-of-speech
// tagging backed by prose.
package annotate

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/gcbaptista/go-title-engine/model"
)

// Prose implements services.Annotator with the prose English pipeline
// (punkt segmentation, Treebank-style tokenization, averaged perceptron tagger).
type Prose struct{}

// NewProse creates a prose-backed annotator.
func NewProse() *Prose {
	return &Prose{}
}

// Sentences splits text into sentences.
func (p *Prose) Sentences(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}

	sentences := make([]string, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences, nil
}

// Tokenize splits text into tokens.
func (p *Prose) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, tok.Text)
	}
	return tokens, nil
}

// Tag assigns one tag per unit.
//
// Units are first tagged together so every unit gets its tag in context. When prose splits a
// unit differently (multi-word phrases, contractions) each unit is tagged on its own over its
// full text and receives the tag of its final token, the head of an English noun or adjective
// phrase.
func (p *Prose) Tag(units []string) ([]model.Token, error) {
	if len(units) == 0 {
		return []model.Token{}, nil
	}

	tagged, err := p.tagText(strings.Join(units, " "))
	if err != nil {
		return nil, err
	}
	if aligned(tagged, units) {
		out := make([]model.Token, len(units))
		for i, tok := range tagged {
			out[i] = model.Token{Text: units[i], Tag: tok.Tag}
		}
		return out, nil
	}

	out := make([]model.Token, len(units))
	for i, unit := range units {
		toks, err := p.tagText(unit)
		if err != nil {
			return nil, err
		}
		tag := ""
		if len(toks) > 0 {
			tag = toks[len(toks)-1].Tag
		}
		out[i] = model.Token{Text: unit, Tag: tag}
	}
	return out, nil
}

// TagText tokenizes and tags text in one pass.
func (p *Prose) TagText(text string) ([]model.Token, error) {
	toks, err := p.tagText(text)
	if err != nil {
		return nil, err
	}
	out := make([]model.Token, len(toks))
	for i, tok := range toks {
		out[i] = model.Token{Text: tok.Text, Tag: tok.Tag}
	}
	return out, nil
}

func (p *Prose) tagText(text string) ([]prose.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}
	return doc.Tokens(), nil
}

func aligned(tokens []prose.Token, units []string) bool {
	if len(tokens) != len(units) {
		return false
	}
	for i, tok := range tokens {
		if tok.Text != units[i] {
			return false
		}
	}
	return true
}
