// Package vector synthesizes the fixed-width feature vector attached to
// every parsed record. The mapping is a pure table lookup; equal labels
// always produce equal vectors.
package vector

import "github.com/quantaserve/qparse/pkg/qparse/vocab"

// Size is the number of vector elements: intent, urgency, budget.
const Size = 3

// Synthesizer converts classified labels into feature vectors using fixed
// weight tables.
type Synthesizer struct {
	intent  map[string]float64
	urgency map[vocab.Urgency]float64
	budget  map[vocab.Budget]float64
}

// New creates a synthesizer from the weight tables. Tables are copied at
// construction.
func New(w vocab.Weights) *Synthesizer {
	intent := make(map[string]float64, len(w.Intent))
	for k, wt := range w.Intent {
		intent[k] = wt
	}
	urgency := make(map[vocab.Urgency]float64, len(w.Urgency))
	for k, wt := range w.Urgency {
		urgency[k] = wt
	}
	budget := make(map[vocab.Budget]float64, len(w.Budget))
	for k, wt := range w.Budget {
		budget[k] = wt
	}
	return &Synthesizer{intent: intent, urgency: urgency, budget: budget}
}

// Synthesize returns the feature vector for the given labels. Element 0
// encodes the intent, element 1 the urgency, element 2 the budget
// sensitivity. An intent missing from the weight table and absent
// urgency/budget labels all contribute 0.
func (s *Synthesizer) Synthesize(intent string, urgency *vocab.Urgency, budget *vocab.Budget) [Size]float64 {
	var v [Size]float64
	v[0] = s.intent[intent]
	if urgency != nil {
		v[1] = s.urgency[*urgency]
	}
	if budget != nil {
		v[2] = s.budget[*budget]
	}
	return v
}
