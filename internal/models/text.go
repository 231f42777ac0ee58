package models

import (
	"regexp"
	"slices"
	"strings"
)

// nonWord matches runs of characters that are not letters, digits or underscore.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// ShortIntroduction returns at most n characters of the content without
// ending mid-word: the trailing partial word and the separator before it are
// dropped. Words are separated by a space or a newline. Content shorter than
// n is trimmed the same way.
func (a *Article) ShortIntroduction(n int) string {
	if !a.hasContent || n <= 0 {
		return ""
	}

	runes := []rune(a.content)
	prefix := runes[:min(n, len(runes))]

	partial := 0
	for i := len(prefix) - 1; i >= 0 && prefix[i] != ' ' && prefix[i] != '\n'; i-- {
		partial++
	}

	end := len(prefix) - partial - 1
	if end <= 0 {
		return ""
	}

	return string(runes[:end])
}

// WordCount is a word and the number of times it occurs.
type WordCount struct {
	Word  string `json:"word"  yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// WordCounts is ordered by descending count.
type WordCounts []WordCount

// Map returns the counts keyed by word.
func (wc WordCounts) Map() map[string]int {
	m := make(map[string]int, len(wc))
	for _, w := range wc {
		m[w.Word] = w.Count
	}

	return m
}

// Words returns the words in order.
func (wc WordCounts) Words() []string {
	words := make([]string, 0, len(wc))
	for _, w := range wc {
		words = append(words, w.Word)
	}

	return words
}

// MostCommonWords returns the n most frequent lower-cased words of the content.
// Words with equal counts keep the order in which they first appear.
func (a *Article) MostCommonWords(n int) WordCounts {
	if !a.hasContent || n <= 0 {
		return WordCounts{}
	}

	counts := CountWords(a.content)
	if len(counts) > n {
		counts = counts[:n]
	}

	return counts
}

// CountWords counts every word of text, most frequent first.
func CountWords(text string) WordCounts {
	index := make(map[string]int)

	var counts WordCounts

	for _, token := range nonWord.Split(text, -1) {
		if token == "" {
			continue
		}

		word := strings.ToLower(token)
		if i, ok := index[word]; ok {
			counts[i].Count++

			continue
		}

		index[word] = len(counts)
		counts = append(counts, WordCount{Word: word, Count: 1})
	}

	slices.SortStableFunc(counts, func(x, y WordCount) int {
		return y.Count - x.Count
	})

	return counts
}
