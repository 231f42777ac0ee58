package normalizer

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNoEntries          = errors.New("catalogue contains no entries")
	ErrEntryMissingTitle  = errors.New("entry missing title")
	ErrEntryMissingAuthor = errors.New("entry missing author")
	ErrEntryMissingDate   = errors.New("entry missing publication date")
)

// Validator checks catalogue entries before they become articles.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that every entry has a title, an author and a parseable date.
// Content may be empty.
func (v *Validator) Validate(entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry.Title) == "" {
			return fmt.Errorf("%w at index %d", ErrEntryMissingTitle, i)
		}

		if strings.TrimSpace(entry.Author) == "" {
			return fmt.Errorf("%w at index %d", ErrEntryMissingAuthor, i)
		}

		if strings.TrimSpace(entry.Published) == "" {
			return fmt.Errorf("%w at index %d", ErrEntryMissingDate, i)
		}

		if _, err := ParseDate(entry.Published); err != nil {
			return fmt.Errorf("%w at index %d", err, i)
		}
	}

	return nil
}
