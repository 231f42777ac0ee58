package normalizer

import (
	"fmt"

	"articlekit/internal/models"
)

// Processor validates entries and then transforms them into articles.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts ...models.Option) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(opts...),
	}
}

// Process returns the articles of entries, oldest publication first.
func (p *Processor) Process(entries []Entry) ([]*models.Article, error) {
	// 1. Validate the input data
	if err := p.validator.Validate(entries); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 2. Transform the data
	articles, err := p.transformer.Transform(entries)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	models.SortByPublicationDate(articles)

	return articles, nil
}
