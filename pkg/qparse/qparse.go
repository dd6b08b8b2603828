package qparse

import (
	"github.com/quantaserve/qparse/pkg/qparse/classify"
	"github.com/quantaserve/qparse/pkg/qparse/text"
	"github.com/quantaserve/qparse/pkg/qparse/vector"
	"github.com/quantaserve/qparse/pkg/qparse/vocab"
)

// Defaults applied when a request leaves role or channel empty.
const (
	DefaultUserRole = "customer"
	DefaultChannel  = "web"
)

// Modifier keys used in Record.Modifiers.
const (
	ModifierUserRole = "user_role"
	ModifierChannel  = "channel"
)

// Request is a raw service request with optional requester metadata.
// Every field tolerates the empty string.
type Request struct {
	Query    string `json:"query"`
	UserRole string `json:"user_role,omitempty"`
	Location string `json:"location,omitempty"`
	Channel  string `json:"channel,omitempty"`
}

// Record is the structured result of parsing a request. Optional facets
// are pointers and marshal to JSON null when absent. A Record is a pure
// function of the Request: equal requests marshal to byte-identical JSON.
type Record struct {
	PrimaryIntent      string            `json:"primary_intent"`
	ServiceType        *string           `json:"service_type"`
	Urgency            *vocab.Urgency    `json:"urgency"`
	BudgetSensitivity  *vocab.Budget     `json:"budget_sensitivity"`
	Location           *string           `json:"location"`
	Modifiers          map[string]string `json:"modifiers"`
	QuantumReadyVector [3]float64        `json:"quantum_ready_vector"`
}

// Engine is the parsing engine facade. It wires the four pipeline stages
// behind a single Parse call: normalization, tokenization, classification,
// vector synthesis.
type Engine struct {
	tokenizer  *text.Tokenizer
	classifier *classify.Classifier
	synth      *vector.Synthesizer
}

// New creates an engine over the given vocabulary. The vocabulary is
// copied stage by stage; the engine holds no mutable state afterwards and
// is safe for concurrent use.
func New(v vocab.Vocabulary) *Engine {
	return &Engine{
		tokenizer:  text.NewTokenizer(v.Stopwords),
		classifier: classify.New(v),
		synth:      vector.New(v.Weights),
	}
}

// Default returns an engine over the built-in vocabulary.
func Default() *Engine {
	return New(vocab.Default())
}

// Parse runs a request through the full pipeline and assembles the record.
// It is total: any input, including the empty query, produces a valid
// record, and there is no error path.
func (e *Engine) Parse(req Request) Record {
	normalized := text.Normalize(req.Query)
	tokens := e.tokenizer.Tokenize(normalized)

	rec := Record{
		PrimaryIntent: e.classifier.PrimaryIntent(tokens),
		Modifiers:     make(map[string]string, 2),
	}

	if st, ok := e.classifier.ServiceType(tokens); ok {
		rec.ServiceType = &st
	}
	if u, ok := e.classifier.Urgency(normalized); ok {
		rec.Urgency = &u
	}
	if b, ok := e.classifier.Budget(normalized); ok {
		rec.BudgetSensitivity = &b
	}
	if req.Location != "" {
		loc := req.Location
		rec.Location = &loc
	}

	role := req.UserRole
	if role == "" {
		role = DefaultUserRole
	}
	channel := req.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	rec.Modifiers[ModifierUserRole] = role
	rec.Modifiers[ModifierChannel] = channel

	rec.QuantumReadyVector = e.synth.Synthesize(rec.PrimaryIntent, rec.Urgency, rec.BudgetSensitivity)
	return rec
}
