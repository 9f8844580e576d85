// Package intent classifies free-text chat messages against a phrase
// dictionary and extracts structured filters from the residual text.
package intent

import "strings"

// Confidence is 0.6 base plus up to 0.4 for phrase coverage, so any
// match lands in [0.6, 1.0]. Longer phrases relative to the message
// score higher, which keeps short generic phrases from hijacking long
// unrelated messages.
const (
	confidenceBase     = 0.6
	confidenceCoverage = 0.4
)

// filterable lists the intents that carry structured filters. Everything
// else (greetings, help, ...) routes on the name alone.
var filterable = map[Name]bool{
	NameSchedule:     true,
	NameAssignment:   true,
	NameGroup:        true,
	NameGroupMembers: true,
}

// Detector matches messages against an immutable phrase table.
// Detect is a pure function of its input; a Detector is safe for
// concurrent use.
type Detector struct {
	table Table
}

// NewDetector creates a Detector over the given phrase table.
func NewDetector(table Table) *Detector {
	return &Detector{table: table}
}

// Detect classifies a message. The caller is expected to have stripped
// bot mentions already. Returns nil when nothing matches.
func (d *Detector) Detect(message string) *Detected {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return nil
	}

	var best *Detected

	for _, entry := range d.table {
		for _, phrase := range entry.Phrases {
			candidate := strings.ToLower(phrase)
			if !strings.Contains(normalized, candidate) {
				continue
			}

			coverage := float64(len(candidate)) / float64(len(normalized))
			confidence := confidenceBase + coverage*confidenceCoverage
			if confidence > 1 {
				confidence = 1
			}

			// Strict greater-than keeps the first-seen pair on ties.
			if best == nil || confidence > best.Confidence {
				best = &Detected{
					Name:          entry.Name,
					Confidence:    confidence,
					MatchedPhrase: phrase,
				}
			}
		}
	}

	if best == nil {
		return nil
	}

	if filterable[best.Name] {
		if filters := extractFilters(normalized, strings.ToLower(best.MatchedPhrase), best.Name); filters != nil {
			best.Filters = filters
		}
	}

	return best
}
