package normalizer

import (
	"fmt"

	"articlekit/internal/models"
)

// Transformer builds articles from validated entries.
type Transformer struct {
	opts []models.Option
}

// NewTransformer creates a transformer; opts are passed to every article.
func NewTransformer(opts ...models.Option) *Transformer {
	return &Transformer{opts: opts}
}

// Transform converts entries into articles in catalogue order. An entry's
// attribute is assigned through the typed field, so a value that is not an
// int fails with a *field.TypeError.
func (t *Transformer) Transform(entries []Entry) ([]*models.Article, error) {
	articles := make([]*models.Article, 0, len(entries))

	for i, entry := range entries {
		published, err := ParseDate(entry.Published)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		article := models.NewWithOptions(entry.Title, entry.Author, published, entry.Content, t.opts...)

		if entry.Attribute != nil {
			if err := article.SetAttribute(entry.Attribute); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}

		articles = append(articles, article)
	}

	return articles, nil
}
