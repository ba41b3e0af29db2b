package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/adsun-ai/adsun/internal/llm"
	"github.com/adsun-ai/adsun/internal/process"
)

// fakeClient returns a canned reply or error.
type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestClassifyWithoutClient(t *testing.T) {
	c := NewClassifier(nil)
	in, conf := c.Classify(context.Background(), "koľko procesov mám", process.Counts{})
	if in != NoAIAvailable {
		t.Errorf("intent = %q, want %q", in, NoAIAvailable)
	}
	if conf != 0.0 {
		t.Errorf("confidence = %v, want 0", conf)
	}
}

func TestClassifyUsesLLMReply(t *testing.T) {
	client := &fakeClient{reply: "statistics"}
	c := NewClassifier(client)

	in, conf := c.Classify(context.Background(), "koľko procesov mám", process.Counts{Total: 3})
	if in != Statistics {
		t.Errorf("intent = %q, want %q", in, Statistics)
	}
	if conf != 0.9 {
		t.Errorf("confidence = %v, want 0.9", conf)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 LLM call, got %d", client.calls)
	}
}

func TestClassifyDegradesOnLLMError(t *testing.T) {
	client := &fakeClient{err: errors.New("network down")}
	c := NewClassifier(client)

	in, conf := c.Classify(context.Background(), "koľko procesov mám", process.Counts{})
	if in != Statistics {
		t.Errorf("fallback intent = %q, want %q", in, Statistics)
	}
	if conf != 0.8 {
		t.Errorf("fallback confidence = %v, want 0.8", conf)
	}
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Intent
		conf  float64
	}{
		{"exact token", "list_all", ListAll, 0.9},
		{"wrapped in prose", `Typ odpovede je "find_process".`, FindProcess, 0.9},
		{"mixed case", "STATISTICS", Statistics, 0.9},
		{"precedence on ambiguity", "statistics alebo list_all", Statistics, 0.9},
		{"unknown reply", "neviem posúdiť", GeneralSearch, 0.6},
		{"empty reply", "", GeneralSearch, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, conf := ParseReply(tt.reply)
			if in != tt.want || conf != tt.conf {
				t.Errorf("ParseReply(%q) = (%q, %v), want (%q, %v)", tt.reply, in, conf, tt.want, tt.conf)
			}
		})
	}
}

func TestFallbackRules(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
		conf  float64
	}{
		{"koľko procesov mám", Statistics, 0.8},
		{"pocet procesov", Statistics, 0.8},
		{"všetky procesy", ListAll, 0.8},
		{"zobraz zoznam", ListAll, 0.8},
		{"aké máme oddelenia", Departments, 0.7},
		{"organizačná štruktúra", Departments, 0.7},
		{"proces fakturácie", FindProcess, 0.7},
		{"čokoľvek iné", GeneralSearch, 0.5},
	}

	for _, tt := range tests {
		in, conf := Fallback(tt.query)
		if in != tt.want || conf != tt.conf {
			t.Errorf("Fallback(%q) = (%q, %v), want (%q, %v)", tt.query, in, conf, tt.want, tt.conf)
		}
	}
}

func TestFallbackTotality(t *testing.T) {
	known := map[Intent]bool{
		Statistics: true, Departments: true, ListAll: true, FindProcess: true,
		PeopleRoles: true, Pricing: true, Categories: true,
		GeneralSearch: true, OffTopic: true,
	}

	inputs := []string{"", "    ", "???", "42", "úplne ľubovoľný text", "SELECT * FROM processes"}
	for _, q := range inputs {
		in, conf := Fallback(q)
		if !known[in] {
			t.Errorf("Fallback(%q) returned unknown intent %q", q, in)
		}
		if conf <= 0 || conf > 1 {
			t.Errorf("Fallback(%q) confidence %v out of range", q, conf)
		}
	}
}
