package interview

import "time"

// ProcessContext accumulates what the interview has learned so far.
// It is owned exclusively by one Session; slices start empty, never
// nil, and only grow across turns.
type ProcessContext struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	ComplexityScore     int      `json:"complexity_score"`     // 1-10
	AutomationPotential int      `json:"automation_potential"` // 1-5
	IdentifiedGaps      []string `json:"identified_gaps"`
	MentionedSystems    []string `json:"mentioned_systems"`
	MentionedPeople     []string `json:"mentioned_people"`
}

// NewProcessContext returns a context with all slices initialized.
func NewProcessContext() ProcessContext {
	return ProcessContext{
		ComplexityScore:     1,
		AutomationPotential: 1,
		IdentifiedGaps:      []string{},
		MentionedSystems:    []string{},
		MentionedPeople:     []string{},
	}
}

// Snapshot returns a deep copy, so the copy stays frozen while the
// live context keeps changing.
func (c ProcessContext) Snapshot() ProcessContext {
	copied := c
	copied.IdentifiedGaps = append([]string{}, c.IdentifiedGaps...)
	copied.MentionedSystems = append([]string{}, c.MentionedSystems...)
	copied.MentionedPeople = append([]string{}, c.MentionedPeople...)
	return copied
}

// ConversationEntry is one recorded interview turn. Immutable once
// appended; Context holds the post-turn snapshot.
type ConversationEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Response  string         `json:"response"`
	Context   ProcessContext `json:"context"`
}
