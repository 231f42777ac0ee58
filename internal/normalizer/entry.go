// Package normalizer turns raw catalogue entries into validated Articles.
package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseableDate is returned when a publication date matches no known layout.
var ErrUnparseableDate = errors.New("unparseable publication date")

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Entry is one article as written in a catalogue file.
type Entry struct {
	Attribute any    `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Title     string `json:"title"               yaml:"title"`
	Author    string `json:"author"              yaml:"author"`
	Published string `json:"published"           yaml:"published"`
	Content   string `json:"content"             yaml:"content"`
}

// ParseDate parses a publication date. Dates without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}
