// Package interview drives the guided documentation interview: a
// fixed ladder of question phases, analyzer feedback after each
// answer, and a context that accumulates what was learned until the
// process can be saved as a record.
package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/adsun-ai/adsun/internal/analyzer"
	"github.com/adsun-ai/adsun/internal/process"
)

// maxTurns is the last turn that still gets a question; anything past
// it closes with the summary.
const maxTurns = 12

// Session is one documentation interview. It is not safe for
// concurrent use; each caller owns its session.
type Session struct {
	analyzer   *analyzer.Analyzer
	documenter string
	context    ProcessContext
	log        []ConversationEntry
}

// NewSession creates an interview session.
func NewSession(a *analyzer.Analyzer) *Session {
	return &Session{
		analyzer: a,
		context:  NewProcessContext(),
	}
}

// Start resets the session and returns the welcome text with the
// opening question.
func (s *Session) Start(documenterName string) string {
	s.documenter = documenterName
	s.context = NewProcessContext()
	s.log = nil

	return fmt.Sprintf(`ADSUN Process Mapper
Vitajte %s! Som agent na dokumentovanie procesov.

Po každej odpovedi dostanete:
• analýzu spomenutých systémov, ľudí a rozhodnutí
• upozornenie na chýbajúce informácie
• hodnotenie automatizačného potenciálu

Začnime prvou otázkou:

Aký proces chcete zdokumentovať?
(Stručne opíšte, o čo ide - napr. "Spracovanie objednávok zákazníkov")`, documenterName)
}

// ProcessResponse handles one interview answer: it records the turn,
// analyzes the text, folds the findings into the context and returns
// the insights block with the next question, or the terminal summary
// once the interview is complete. Blank input is rejected without
// advancing state.
func (s *Session) ProcessResponse(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Prosím, zadajte odpoveď, aby som mohol pokračovať."
	}

	res := s.analyzer.Analyze(text)
	turn := len(s.log) + 1
	s.updateContext(turn, text, res)

	s.log = append(s.log, ConversationEntry{
		Timestamp: time.Now(),
		Response:  text,
		Context:   s.context.Snapshot(),
	})

	if turn > maxTurns {
		return s.summary()
	}

	return s.insights(res) + "\n\n" + s.nextQuestion(turn, res)
}

// Context returns a snapshot of the accumulated findings.
func (s *Session) Context() ProcessContext {
	return s.context.Snapshot()
}

// History returns the recorded turns.
func (s *Session) History() []ConversationEntry {
	return s.log
}

// Turn returns the number of answers processed so far.
func (s *Session) Turn() int {
	return len(s.log)
}

// Done reports whether the interview has reached its summary.
func (s *Session) Done() bool {
	return len(s.log) > maxTurns
}

func (s *Session) updateContext(turn int, text string, res analyzer.Result) {
	trimmed := strings.TrimSpace(text)
	if turn == 1 {
		s.context.Name = trimmed
	}
	// The second answer replies to the category question; free-form
	// essays are not a category.
	if turn == 2 && s.context.Category == "" && len([]rune(trimmed)) <= 40 {
		s.context.Category = trimmed
	}

	s.context.MentionedSystems = append(s.context.MentionedSystems, res.ExtractedInfo[analyzer.CategorySystems]...)
	s.context.MentionedPeople = append(s.context.MentionedPeople, res.ExtractedInfo[analyzer.CategoryPeople]...)
	s.context.IdentifiedGaps = append(s.context.IdentifiedGaps, res.IdentifiedGaps...)

	s.context.ComplexityScore = clamp(2*len(res.ComplexityIndicators), 1, 10)
	s.context.AutomationPotential = automationPotential(res.AutomationSignals[0])
}

// automationPotential maps the latest turn's signal onto the 1-5
// readiness scale. It is recomputed each turn, not accumulated.
func automationPotential(signal string) int {
	switch signal {
	case analyzer.SignalHighAutomation:
		return 4
	case analyzer.SignalPartial:
		return 3
	default:
		return 2
	}
}

// insights renders the analyzer findings shown between question and
// answer: category counts, up to 2 gaps and the automation verdict.
func (s *Session) insights(res analyzer.Result) string {
	var b strings.Builder
	b.WriteString("Analýza odpovede:")

	if len(res.ExtractedInfo) > 0 {
		b.WriteString("\nIdentifikované:")
		for _, category := range []string{
			analyzer.CategorySystems, analyzer.CategoryPeople, analyzer.CategoryDecisions,
			analyzer.CategoryProblems, analyzer.CategoryFrequency, analyzer.CategoryAutomation,
		} {
			if items := res.ExtractedInfo[category]; len(items) > 0 {
				fmt.Fprintf(&b, "\n• %s: %d", category, len(items))
			}
		}
	}

	if len(res.IdentifiedGaps) > 0 {
		b.WriteString("\nPotrebuje upresnenie:")
		gaps := res.IdentifiedGaps
		if len(gaps) > 2 {
			gaps = gaps[:2]
		}
		for _, gap := range gaps {
			fmt.Fprintf(&b, "\n• %s", gap)
		}
	}

	fmt.Fprintf(&b, "\nAutomatizácia: %s", res.AutomationSignals[0])
	return b.String()
}

// nextQuestion prefers the analyzer's follow-up over the canned
// question for the current phase.
func (s *Session) nextQuestion(turn int, res analyzer.Result) string {
	if len(res.FollowUpQuestions) > 0 {
		return "Follow-up otázka:\n" + res.FollowUpQuestions[0]
	}
	phase := PhaseForTurn(turn)
	return fmt.Sprintf("%s:\n%s", phaseLabel(phase), QuestionForTurn(turn))
}

var phaseLabels = map[QuestionType]string{
	BasicInfo:    "Základné informácie",
	ProcessFlow:  "Priebeh procesu",
	Stakeholders: "Zúčastnení",
	Resources:    "Zdroje",
	Problems:     "Problémy",
	Automation:   "Automatizácia",
	Optimization: "Optimalizácia",
}

func phaseLabel(phase QuestionType) string {
	return phaseLabels[phase]
}

// summary closes the interview with the accumulated findings and the
// fixed recommendations.
func (s *Session) summary() string {
	return fmt.Sprintf(`Dokumentácia procesu je kompletná!

Zhrnutie analýzy:
• Zložitosť procesu: %d/10
• Spomenuté systémy: %d
• Zapojené osoby: %d
• Identifikované medzery: %d

Odporúčania:
• Začnite automatizáciou najjednoduchších krokov
• Zamerajte sa na odstránenie manuálnych úloh
• Zvážte integráciu spomenutých systémov

Chcete pokračovať s dokumentovaním ďalšieho procesu? (áno/nie)`,
		s.context.ComplexityScore,
		len(s.context.MentionedSystems),
		len(s.context.MentionedPeople),
		len(s.context.IdentifiedGaps))
}

// Finalize converts the interview into a process record ready for the
// store. Phases map onto record fields: the flow answers become steps,
// the resource answers tools and the problem answers common problems.
func (s *Session) Finalize() process.Record {
	return process.Record{
		Name:                s.context.Name,
		Category:            s.context.Category,
		Description:         s.responseAt(1),
		Steps:               s.joinResponses(2, 3),
		Tools:               s.joinResponses(6, 7),
		CommonProblems:      s.joinResponses(8, 9),
		AutomationReadiness: s.context.AutomationPotential,
	}
}

func (s *Session) responseAt(turn int) string {
	if turn < 1 || turn > len(s.log) {
		return ""
	}
	return s.log[turn-1].Response
}

func (s *Session) joinResponses(from, to int) string {
	var parts []string
	for turn := from; turn <= to; turn++ {
		if r := s.responseAt(turn); r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
