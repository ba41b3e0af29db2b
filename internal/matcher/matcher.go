// Package matcher scores process records against a free-text query.
// Scoring is additive keyword matching with diacritic folding; there
// is no embedding or external call involved, so results are fully
// deterministic.
package matcher

import (
	"sort"
	"strings"

	"github.com/adsun-ai/adsun/internal/fold"
	"github.com/adsun-ai/adsun/internal/process"
)

// Confidence thresholds enforced by callers: a targeted lookup accepts
// the top candidate only above TargetedThreshold, the best-effort
// general search above GeneralThreshold.
const (
	TargetedThreshold = 0.6
	GeneralThreshold  = 0.2
)

// Candidate is one scored record.
type Candidate struct {
	Record     process.Record
	Confidence float64
}

// Score rates how well a record matches the query. The weights are
// additive and capped at 1.0:
//
//	name contains the full query        +0.8
//	  (else any query word in the name) +0.4
//	category contains the full query    +0.3
//	owner contains the full query       +0.2
//	tags contain the full query         +0.2
func Score(query string, r process.Record) float64 {
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	name := fold.String(r.Name)
	score := 0.0

	if strings.Contains(name, q) {
		score += 0.8
	} else if anyWordIn(q, name) {
		score += 0.4
	}
	if strings.Contains(fold.String(r.Category), q) {
		score += 0.3
	}
	if strings.Contains(fold.String(r.Owner), q) {
		score += 0.2
	}
	if strings.Contains(fold.String(r.Tags), q) {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// anyWordIn reports whether any whitespace-separated word of the
// query appears in the target.
func anyWordIn(query, target string) bool {
	for _, qw := range strings.Fields(query) {
		if strings.Contains(target, qw) {
			return true
		}
	}
	return false
}

// Search scores every record against the query and returns candidates
// with a positive confidence, sorted descending. Ties keep the input
// order. Callers apply TargetedThreshold or GeneralThreshold to the
// top candidate.
func Search(query string, records []process.Record) []Candidate {
	var candidates []Candidate
	for _, r := range records {
		if conf := Score(query, r); conf > 0 {
			candidates = append(candidates, Candidate{Record: r, Confidence: conf})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates
}

// Best returns the top candidate if its confidence exceeds the given
// threshold, or nil.
func Best(query string, records []process.Record, threshold float64) *Candidate {
	candidates := Search(query, records)
	if len(candidates) == 0 || candidates[0].Confidence <= threshold {
		return nil
	}
	return &candidates[0]
}
