// Package text provides the normalization and tokenization stages of the
// parsing pipeline. Both are pure: no state mutates after construction and
// identical input always yields identical output.
package text

import "strings"

// Normalize lowercases s, replaces every character outside [a-z0-9] with a
// space, and collapses whitespace runs to single spaces. The result has no
// leading or trailing spaces; empty input yields empty output.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenizer splits normalized text into tokens, removing stopwords.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text on whitespace and drops stopwords, preserving
// left-to-right token order. Input is expected to be normalized already;
// surviving tokens come back exactly as they appear in the text.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t.isStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
