package process

import "time"

// Record is one documented business process.
type Record struct {
	ID                  string    `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	Category            string    `json:"category" yaml:"category"`
	Owner               string    `json:"owner" yaml:"owner"`
	Frequency           string    `json:"frequency" yaml:"frequency"`
	DurationMinutes     int       `json:"duration_minutes" yaml:"duration_minutes"`
	Priority            int       `json:"priority" yaml:"priority"`
	AutomationReadiness int       `json:"automation_readiness" yaml:"automation_readiness"` // 1-5
	TriggerType         string    `json:"trigger_type" yaml:"trigger_type"`
	SuccessCriteria     string    `json:"success_criteria" yaml:"success_criteria"`
	CommonProblems      string    `json:"common_problems" yaml:"common_problems"`
	Tags                string    `json:"tags" yaml:"tags"`
	Description         string    `json:"description" yaml:"description"`
	Steps               string    `json:"steps" yaml:"steps"`
	Tools               string    `json:"tools" yaml:"tools"`
	Risks               string    `json:"risks" yaml:"risks"`
	Active              bool      `json:"active" yaml:"active"`
	CreatedAt           time.Time `json:"created_at" yaml:"created_at"`
}

// GroupCount is one aggregation bucket (a category or an owner) with
// the number of active processes it holds.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Counts summarizes the active contents of the store. Categories and
// Owners are ordered by count descending; ties keep the order the
// store returned them in, so the result is deterministic.
type Counts struct {
	Total      int          `json:"total"`
	Categories []GroupCount `json:"categories"`
	Owners     []GroupCount `json:"owners"`
}

// TopCategories returns at most n category buckets.
func (c Counts) TopCategories(n int) []GroupCount {
	if len(c.Categories) <= n {
		return c.Categories
	}
	return c.Categories[:n]
}

// TopOwners returns at most n owner buckets.
func (c Counts) TopOwners(n int) []GroupCount {
	if len(c.Owners) <= n {
		return c.Owners
	}
	return c.Owners[:n]
}
