// Package classify extracts the four classification facets of a service
// request: primary intent, fine-grained service type, urgency, and budget
// sensitivity. Matching is purely lexical against fixed vocabulary tables.
package classify

import (
	"strings"

	"github.com/quantaserve/qparse/pkg/qparse/vocab"
)

// GeneralIntent is reported when no intent keyword matches.
const GeneralIntent = "general_service"

// intentSuffix turns a service category into its intent label.
const intentSuffix = "_service"

// Classifier runs the keyword extractors. All methods are pure and the
// tables are fixed at construction, so a Classifier is safe for concurrent
// use.
type Classifier struct {
	intents      map[string]string   // keyword → category (lowercase)
	serviceTypes map[string]struct{} // fine-grained vocabulary
	urgency      []vocab.UrgencyPhrase
	budget       []vocab.BudgetPhrase
}

// New creates a classifier from the vocabulary tables. Tables are copied,
// so later mutation of v does not affect the classifier.
func New(v vocab.Vocabulary) *Classifier {
	intents := make(map[string]string, len(v.IntentKeywords))
	for kw, cat := range v.IntentKeywords {
		intents[strings.ToLower(kw)] = strings.ToLower(cat)
	}

	types := make(map[string]struct{}, len(v.ServiceTypes))
	for _, st := range v.ServiceTypes {
		types[strings.ToLower(st)] = struct{}{}
	}

	urgency := make([]vocab.UrgencyPhrase, len(v.UrgencyPhrases))
	for i, p := range v.UrgencyPhrases {
		urgency[i] = vocab.UrgencyPhrase{Phrase: strings.ToLower(p.Phrase), Level: p.Level}
	}

	budget := make([]vocab.BudgetPhrase, len(v.BudgetPhrases))
	for i, p := range v.BudgetPhrases {
		budget[i] = vocab.BudgetPhrase{Phrase: strings.ToLower(p.Phrase), Level: p.Level}
	}

	return &Classifier{
		intents:      intents,
		serviceTypes: types,
		urgency:      urgency,
		budget:       budget,
	}
}

// PrimaryIntent determines the service intent from the tokens. The first
// token in text order that appears in the intent table decides the
// category; when two tokens both match, position in the text breaks the
// tie, never table layout. No match yields GeneralIntent.
func (c *Classifier) PrimaryIntent(tokens []string) string {
	for _, tok := range tokens {
		if cat, ok := c.intents[tok]; ok {
			return cat + intentSuffix
		}
	}
	return GeneralIntent
}

// ServiceType returns the first token in text order found in the
// fine-grained service-type vocabulary, verbatim. ok is false when no
// token matches. The result does not depend on PrimaryIntent.
func (c *Classifier) ServiceType(tokens []string) (string, bool) {
	for _, tok := range tokens {
		if _, ok := c.serviceTypes[tok]; ok {
			return tok, true
		}
	}
	return "", false
}

// Urgency scans the normalized text for urgency phrases. Entries are tried
// in table order and the first phrase contained anywhere in the text wins,
// regardless of where it occurs. Containment is plain substring matching:
// "knows" triggers "now".
func (c *Classifier) Urgency(normalized string) (vocab.Urgency, bool) {
	for _, p := range c.urgency {
		if strings.Contains(normalized, p.Phrase) {
			return p.Level, true
		}
	}
	return "", false
}

// Budget scans the normalized text for budget phrases, first table entry
// contained wins. Multi-word phrases like "fair price" match across token
// boundaries, which token-level matching could not see.
func (c *Classifier) Budget(normalized string) (vocab.Budget, bool) {
	for _, p := range c.budget {
		if strings.Contains(normalized, p.Phrase) {
			return p.Level, true
		}
	}
	return "", false
}
