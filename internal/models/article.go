// Package models defines the Article record and its text helpers.
package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"articlekit/internal/field"
)

// isoLayout is ISO 8601 without zone, the way naive timestamps are printed.
const isoLayout = "2006-01-02T15:04:05"

// Clock returns the current time. Content edits are stamped with it.
type Clock func() time.Time

// attributeField is the type-checked int slot exposed as Article.Attribute.
var attributeField = field.New[int]("attribute")

// Article represents a published piece of writing.
type Article struct {
	PublicationDate time.Time
	lastEdited      time.Time
	attrs           field.Store
	clock           Clock
	Title           string
	Author          string
	content         string
	id              int
	hasContent      bool
	edited          bool
}

// Option configures an Article at construction time.
type Option func(*options)

type options struct {
	seq   *Sequence
	clock Clock
}

// WithSequence draws the article id from seq instead of the default sequence.
func WithSequence(seq *Sequence) Option {
	return func(o *options) {
		o.seq = seq
	}
}

// WithClock stamps content edits using clock instead of time.Now.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New creates an article numbered from the default sequence.
func New(title, author string, publicationDate time.Time, content string) *Article {
	return NewWithOptions(title, author, publicationDate, content)
}

// NewWithOptions creates an article, applying opts first.
func NewWithOptions(title, author string, publicationDate time.Time, content string, opts ...Option) *Article {
	o := options{
		seq:   defaultSequence,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Article{
		id:              o.seq.Next(),
		Title:           title,
		Author:          author,
		PublicationDate: publicationDate,
		content:         content,
		hasContent:      true,
		attrs:           field.Store{},
		clock:           o.clock,
	}
}

// ID returns the construction-order id.
func (a *Article) ID() int {
	return a.id
}

// String renders the article as
// <Article title="X" author='Y' publication_date='2020-01-01T00:00:00'>.
func (a *Article) String() string {
	return fmt.Sprintf(`<Article title="%s" author='%s' publication_date='%s'>`,
		a.Title, a.Author, FormatISO(a.PublicationDate))
}

// FormatISO formats t as an ISO 8601 date-time without zone. A microsecond
// fraction is appended only when it is non-zero.
func FormatISO(t time.Time) string {
	s := t.Format(isoLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}

	return s
}

// Len returns the number of characters in the content, 0 once it is cleared.
func (a *Article) Len() int {
	if !a.hasContent {
		return 0
	}

	return utf8.RuneCountInString(a.content)
}

// Content returns the current content. ok is false after ClearContent.
func (a *Article) Content() (content string, ok bool) {
	return a.content, a.hasContent
}

// SetContent replaces the content and stamps LastEdited.
func (a *Article) SetContent(content string) {
	a.content = content
	a.hasContent = true
	a.touch()
}

// ClearContent removes the content and stamps LastEdited.
func (a *Article) ClearContent() {
	a.content = ""
	a.hasContent = false
	a.touch()
}

func (a *Article) touch() {
	a.lastEdited = a.clock()
	a.edited = true
}

// LastEdited returns when the content last changed. ok is false if it never has.
func (a *Article) LastEdited() (t time.Time, ok bool) {
	return a.lastEdited, a.edited
}

// Attribute returns the typed attribute, if one was set.
func (a *Article) Attribute() (int, bool) {
	return attributeField.Get(a.attrs)
}

// SetAttribute assigns the typed attribute. Values that are not an int are
// rejected with a *field.TypeError and leave the attribute unchanged.
func (a *Article) SetAttribute(value any) error {
	return attributeField.Set(a.attrs, value)
}
