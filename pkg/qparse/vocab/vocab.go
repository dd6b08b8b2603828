package vocab

import (
	"fmt"

	"github.com/quantaserve/qparse/pkg/qparse/internalerr"
)

// Urgency is the closed set of urgency levels a request can express.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencySameDay   Urgency = "same_day"
	UrgencySoon      Urgency = "soon"
	UrgencyFlexible  Urgency = "flexible"
)

// Valid reports whether u is one of the defined urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyEmergency, UrgencySameDay, UrgencySoon, UrgencyFlexible:
		return true
	}
	return false
}

// Budget is the closed set of budget sensitivity levels.
type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Valid reports whether b is one of the defined budget levels.
func (b Budget) Valid() bool {
	switch b {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

// UrgencyPhrase maps a trigger phrase to an urgency level.
type UrgencyPhrase struct {
	Phrase string
	Level  Urgency
}

// BudgetPhrase maps a trigger phrase to a budget sensitivity level.
type BudgetPhrase struct {
	Phrase string
	Level  Budget
}

// Weights holds the feature-vector weight tables. Labels absent from a
// table weigh zero.
type Weights struct {
	Intent  map[string]float64
	Urgency map[Urgency]float64
	Budget  map[Budget]float64
}

// Vocabulary bundles every fixed table the parsing pipeline reads:
// stopwords, intent keywords, the fine-grained service-type list, the
// ordered urgency and budget phrase tables, and the vector weights.
//
// Phrase tables are ordered: when several phrases appear in the same text,
// the earliest table entry wins. Keyword and service-type matching is
// position-ordered over the tokens instead, so table order carries no
// meaning there.
//
// A Vocabulary is plain data. Components copy what they need at
// construction time, so a value handed to an engine can not be mutated
// out from under it.
type Vocabulary struct {
	Stopwords      []string
	IntentKeywords map[string]string // keyword → service category
	ServiceTypes   []string
	UrgencyPhrases []UrgencyPhrase
	BudgetPhrases  []BudgetPhrase
	Weights        Weights
}

// Default returns the built-in home-services vocabulary. Each call builds
// a fresh value, so callers may modify the result freely.
func Default() Vocabulary {
	return Vocabulary{
		Stopwords: []string{
			"i", "need", "a", "an", "the", "to", "for", "my", "in", "at",
			"on", "of", "please", "help", "with", "and", "is", "it",
			"that", "can", "you",
		},
		IntentKeywords: map[string]string{
			"plumber":     "plumbing",
			"plumbing":    "plumbing",
			"leak":        "leak",
			"pipe":        "leak",
			"drain":       "drain",
			"toilet":      "toilet",
			"roof":        "roofing",
			"roofer":      "roofing",
			"hvac":        "hvac",
			"furnace":     "hvac",
			"electrician": "electrical",
			"electrical":  "electrical",
			"cement":      "cement",
			"concrete":    "cement",
		},
		// "roof" is deliberately absent: it names the trade, not the
		// problem, and must not shadow a finer word like "leak".
		ServiceTypes: []string{"leak", "drain", "toilet", "hvac", "cement", "concrete"},
		UrgencyPhrases: []UrgencyPhrase{
			{Phrase: "now", Level: UrgencyEmergency},
			{Phrase: "asap", Level: UrgencyEmergency},
			{Phrase: "urgent", Level: UrgencyEmergency},
			{Phrase: "tonight", Level: UrgencyEmergency},
			{Phrase: "today", Level: UrgencySameDay},
			{Phrase: "tomorrow", Level: UrgencySoon},
			{Phrase: "whenever", Level: UrgencyFlexible},
		},
		BudgetPhrases: []BudgetPhrase{
			{Phrase: "cheap", Level: BudgetLow},
			{Phrase: "affordable", Level: BudgetLow},
			{Phrase: "budget", Level: BudgetLow},
			{Phrase: "expensive", Level: BudgetHigh},
			{Phrase: "premium", Level: BudgetHigh},
			{Phrase: "fair price", Level: BudgetMedium},
		},
		Weights: Weights{
			Intent: map[string]float64{
				"plumbing_service":   0.1,
				"roofing_service":    0.2,
				"hvac_service":       0.3,
				"electrical_service": 0.4,
				"cement_service":     0.5,
				"general_service":    0.0,
			},
			Urgency: map[Urgency]float64{
				UrgencyEmergency: 1.0,
				UrgencySameDay:   0.7,
				UrgencySoon:      0.5,
				UrgencyFlexible:  0.2,
			},
			Budget: map[Budget]float64{
				BudgetLow:    0.2,
				BudgetMedium: 0.5,
				BudgetHigh:   0.8,
			},
		},
	}
}

// Validate checks internal consistency: no empty keywords or phrases, and
// every urgency/budget label drawn from the closed level sets.
func (v Vocabulary) Validate() error {
	for kw, cat := range v.IntentKeywords {
		if kw == "" || cat == "" {
			return fmt.Errorf("intent keyword %q → %q: %w", kw, cat, internalerr.ErrInvalidVocabulary)
		}
	}
	for _, st := range v.ServiceTypes {
		if st == "" {
			return fmt.Errorf("empty service type: %w", internalerr.ErrInvalidVocabulary)
		}
	}
	for _, p := range v.UrgencyPhrases {
		if p.Phrase == "" {
			return fmt.Errorf("empty urgency phrase: %w", internalerr.ErrInvalidVocabulary)
		}
		if !p.Level.Valid() {
			return fmt.Errorf("urgency phrase %q level %q: %w", p.Phrase, p.Level, internalerr.ErrUnknownLabel)
		}
	}
	for _, p := range v.BudgetPhrases {
		if p.Phrase == "" {
			return fmt.Errorf("empty budget phrase: %w", internalerr.ErrInvalidVocabulary)
		}
		if !p.Level.Valid() {
			return fmt.Errorf("budget phrase %q level %q: %w", p.Phrase, p.Level, internalerr.ErrUnknownLabel)
		}
	}
	for u := range v.Weights.Urgency {
		if !u.Valid() {
			return fmt.Errorf("urgency weight label %q: %w", u, internalerr.ErrUnknownLabel)
		}
	}
	for b := range v.Weights.Budget {
		if !b.Valid() {
			return fmt.Errorf("budget weight label %q: %w", b, internalerr.ErrUnknownLabel)
		}
	}
	return nil
}
