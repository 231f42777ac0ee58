package models

import "slices"

// Articles are ordered by publication date alone. Two articles published at
// the same instant are equal whatever their title, author, content or id.

// Equal reports whether both articles were published at the same instant.
func (a *Article) Equal(other *Article) bool {
	return a.PublicationDate.Equal(other.PublicationDate)
}

// Compare returns -1, 0 or +1 as a was published before, with or after other.
func (a *Article) Compare(other *Article) int {
	return a.PublicationDate.Compare(other.PublicationDate)
}

// Less reports whether a was published before other.
func (a *Article) Less(other *Article) bool {
	return a.Compare(other) < 0
}

// LessOrEqual reports whether a was published no later than other.
func (a *Article) LessOrEqual(other *Article) bool {
	return a.Compare(other) <= 0
}

// Greater reports whether a was published after other.
func (a *Article) Greater(other *Article) bool {
	return a.Compare(other) > 0
}

// GreaterOrEqual reports whether a was published no earlier than other.
func (a *Article) GreaterOrEqual(other *Article) bool {
	return a.Compare(other) >= 0
}

// SortByPublicationDate sorts articles oldest first. Articles published at
// the same instant keep their relative order.
func SortByPublicationDate(articles []*Article) {
	slices.SortStableFunc(articles, (*Article).Compare)
}
