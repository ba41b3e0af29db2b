// Package analyzer extracts structured evidence from a single
// free-text interview answer: which systems, people, decisions and
// problems it mentions, what information is still missing, and how
// complex and automatable the described process looks.
package analyzer

import (
	"strings"

	"github.com/adsun-ai/adsun/internal/fold"
)

// Result is the outcome of analyzing one utterance.
type Result struct {
	// ExtractedInfo maps a category to the text windows around each
	// trigger hit. Categories with no hits are absent.
	ExtractedInfo map[string][]string
	// IdentifiedGaps lists missing or ambiguous information.
	IdentifiedGaps []string
	// FollowUpQuestions holds at most 3 questions, in generation order.
	FollowUpQuestions []string
	// ComplexityIndicators lists the complexity labels that fired.
	ComplexityIndicators []string
	// AutomationSignals always holds exactly one signal.
	AutomationSignals []string
}

// Analyzer evaluates interview answers. It is stateless and safe to
// share across sessions.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// contextWindow is how many runes around a trigger hit are captured
// as evidence.
const contextWindow = 50

// Analyze inspects one utterance and returns categorized evidence,
// gaps, follow-up questions, complexity indicators and exactly one
// automation signal.
func (a *Analyzer) Analyze(utterance string) Result {
	original := []rune(utterance)
	folded := fold.Runes([]rune(utterance))
	foldedStr := string(folded)

	res := Result{
		ExtractedInfo:        map[string][]string{},
		AutomationSignals:    []string{automationSignal(foldedStr)},
		ComplexityIndicators: complexityIndicators(foldedStr),
	}

	for _, category := range categoryOrder {
		var windows []string
		for _, trigger := range categoryVocab[category] {
			windows = append(windows, captureWindows(original, folded, trigger)...)
		}
		if len(windows) > 0 {
			res.ExtractedInfo[category] = windows
		}
	}

	res.IdentifiedGaps = identifyGaps(utterance, foldedStr)
	res.FollowUpQuestions = followUps(foldedStr, res.ExtractedInfo)

	return res
}

// captureWindows finds every occurrence of the folded trigger and
// captures up to contextWindow runes on each side from the original
// text. Folding is rune for rune, so folded indexes address the
// original runes directly.
func captureWindows(original, folded []rune, trigger string) []string {
	trig := []rune(trigger)
	var windows []string
	for i := 0; i+len(trig) <= len(folded); i++ {
		if !runesMatch(folded[i:i+len(trig)], trig) {
			continue
		}
		start := i - contextWindow
		if start < 0 {
			start = 0
		}
		end := i + len(trig) + contextWindow
		if end > len(original) {
			end = len(original)
		}
		windows = append(windows, string(original[start:end]))
		// Skip past this hit so overlapping repeats of the same
		// trigger are not double-counted.
		i += len(trig) - 1
	}
	return windows
}

func runesMatch(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// identifyGaps applies the independent gap rules. Any subset may fire.
func identifyGaps(utterance, folded string) []string {
	var gaps []string

	if len([]rune(utterance)) < 50 {
		gaps = append(gaps, gapTooShort)
	}
	if strings.Contains(folded, "neviem") || strings.Contains(folded, "nezalezi") {
		gaps = append(gaps, gapUnclear)
	}
	if strings.Contains(folded, "zavis") {
		gaps = append(gaps, gapConditional)
	}
	if strings.Contains(folded, "niekedy") || strings.Contains(folded, "obcas") {
		gaps = append(gaps, gapVagueFrequency)
	}

	return gaps
}

// followUps builds at most 3 follow-up questions: up to two per
// extracted category in fixed category order, then targeted questions
// about manual work and email traffic.
func followUps(folded string, extracted map[string][]string) []string {
	var questions []string

	for _, category := range categoryOrder {
		if _, ok := extracted[category]; !ok {
			continue
		}
		questions = append(questions, followUpTemplates[category]...)
	}

	if strings.Contains(folded, "manualne") {
		questions = append(questions, followUpManual)
	}
	if strings.Contains(folded, "email") {
		questions = append(questions, followUpEmail)
	}

	if len(questions) > 3 {
		questions = questions[:3]
	}
	return questions
}

// complexityIndicators returns each complexity label whose trigger set
// has at least one hit, in the fixed signal order.
func complexityIndicators(folded string) []string {
	var indicators []string
	for _, sig := range complexitySignals {
		for _, trigger := range sig.triggers {
			if strings.Contains(folded, trigger) {
				indicators = append(indicators, sig.label)
				break
			}
		}
	}
	return indicators
}

// automationSignal weighs positive against negative automation phrases
// and returns exactly one verdict.
func automationSignal(folded string) string {
	positive := 0
	for _, phrase := range automationPositive {
		if strings.Contains(folded, phrase) {
			positive++
		}
	}
	negative := 0
	for _, phrase := range automationNegative {
		if strings.Contains(folded, phrase) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SignalHighAutomation
	case negative > positive:
		return SignalHumanJudgment
	default:
		return SignalPartial
	}
}
