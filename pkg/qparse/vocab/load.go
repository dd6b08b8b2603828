package vocab

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantaserve/qparse/pkg/qparse/internalerr"
)

// vocabFile is the on-disk YAML schema. Ordered tables are sequences so
// file order survives the round trip.
type vocabFile struct {
	Stopwords []string `yaml:"stopwords"`
	Intents   []struct {
		Keyword  string `yaml:"keyword"`
		Category string `yaml:"category"`
	} `yaml:"intents"`
	ServiceTypes []string      `yaml:"service_types"`
	Urgency      []phraseEntry `yaml:"urgency"`
	Budget       []phraseEntry `yaml:"budget"`
	Weights      *struct {
		Intent  map[string]float64 `yaml:"intent"`
		Urgency map[string]float64 `yaml:"urgency"`
		Budget  map[string]float64 `yaml:"budget"`
	} `yaml:"weights"`
}

type phraseEntry struct {
	Phrase string `yaml:"phrase"`
	Level  string `yaml:"level"`
}

// LoadFile loads a vocabulary from a YAML file.
//
// Expected format:
//
//	stopwords: [i, need, the]
//	intents:
//	  - keyword: plumber
//	    category: plumbing
//	service_types: [leak, drain]
//	urgency:
//	  - phrase: asap
//	    level: emergency
//	budget:
//	  - phrase: cheap
//	    level: low
//	weights:
//	  intent: {plumbing_service: 0.1}
//	  urgency: {emergency: 1.0}
//	  budget: {low: 0.2}
//
// Sections absent from the file keep the Default tables; present sections
// replace them wholesale (an empty sequence clears a table). All keywords
// and phrases are normalized to lowercase. A keyword mapped to two
// categories is a configuration error.
func LoadFile(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}

	var f vocabFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	v := Default()

	if f.Stopwords != nil {
		stops := make([]string, len(f.Stopwords))
		for i, s := range f.Stopwords {
			stops[i] = strings.ToLower(s)
		}
		v.Stopwords = stops
	}

	if f.Intents != nil {
		intents := make(map[string]string, len(f.Intents))
		for _, e := range f.Intents {
			kw := strings.ToLower(strings.TrimSpace(e.Keyword))
			cat := strings.ToLower(strings.TrimSpace(e.Category))
			if kw == "" || cat == "" {
				return Vocabulary{}, fmt.Errorf("intent entry %q → %q: %w", e.Keyword, e.Category, internalerr.ErrInvalidVocabulary)
			}
			if _, ok := intents[kw]; ok {
				return Vocabulary{}, fmt.Errorf("intent keyword %q: %w", kw, internalerr.ErrDuplicateKeyword)
			}
			intents[kw] = cat
		}
		v.IntentKeywords = intents
	}

	if f.ServiceTypes != nil {
		types := make([]string, len(f.ServiceTypes))
		for i, s := range f.ServiceTypes {
			types[i] = strings.ToLower(strings.TrimSpace(s))
		}
		v.ServiceTypes = types
	}

	if f.Urgency != nil {
		phrases := make([]UrgencyPhrase, len(f.Urgency))
		for i, e := range f.Urgency {
			phrases[i] = UrgencyPhrase{
				Phrase: strings.ToLower(strings.TrimSpace(e.Phrase)),
				Level:  Urgency(strings.ToLower(e.Level)),
			}
		}
		v.UrgencyPhrases = phrases
	}

	if f.Budget != nil {
		phrases := make([]BudgetPhrase, len(f.Budget))
		for i, e := range f.Budget {
			phrases[i] = BudgetPhrase{
				Phrase: strings.ToLower(strings.TrimSpace(e.Phrase)),
				Level:  Budget(strings.ToLower(e.Level)),
			}
		}
		v.BudgetPhrases = phrases
	}

	if f.Weights != nil {
		if f.Weights.Intent != nil {
			v.Weights.Intent = f.Weights.Intent
		}
		if f.Weights.Urgency != nil {
			weights := make(map[Urgency]float64, len(f.Weights.Urgency))
			for label, w := range f.Weights.Urgency {
				weights[Urgency(strings.ToLower(label))] = w
			}
			v.Weights.Urgency = weights
		}
		if f.Weights.Budget != nil {
			weights := make(map[Budget]float64, len(f.Weights.Budget))
			for label, w := range f.Weights.Budget {
				weights[Budget(strings.ToLower(label))] = w
			}
			v.Weights.Budget = weights
		}
	}

	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}
