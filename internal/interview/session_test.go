package interview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/adsun-ai/adsun/internal/analyzer"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(analyzer.New())
	s.Start("Jana")
	return s
}

func TestStartResetsState(t *testing.T) {
	s := newTestSession(t)
	s.ProcessResponse("Spracovanie objednávok zákazníkov")

	welcome := s.Start("Jana")
	if !strings.Contains(welcome, "Vitajte Jana") {
		t.Errorf("welcome should greet the documenter:\n%s", welcome)
	}
	if s.Turn() != 0 {
		t.Errorf("Start should reset the turn log, got %d turns", s.Turn())
	}
	if len(s.Context().MentionedSystems) != 0 {
		t.Error("Start should reset the context")
	}
}

func TestBlankInputRejectedWithoutAdvancing(t *testing.T) {
	s := newTestSession(t)

	reply := s.ProcessResponse("   ")
	if !strings.Contains(reply, "zadajte odpoveď") {
		t.Errorf("expected a retry prompt, got:\n%s", reply)
	}
	if s.Turn() != 0 {
		t.Errorf("blank input advanced the turn count to %d", s.Turn())
	}
}

func TestFirstTurnCapturesName(t *testing.T) {
	s := newTestSession(t)

	reply := s.ProcessResponse("Spracovanie objednávok")
	if s.Context().Name != "Spracovanie objednávok" {
		t.Errorf("context name = %q, want the first answer", s.Context().Name)
	}
	// The reply carries a question for the next turn, not a summary.
	if strings.Contains(reply, "kompletná") {
		t.Errorf("turn 1 should not produce the summary:\n%s", reply)
	}
}

func TestTurnThirteenProducesSummary(t *testing.T) {
	s := newTestSession(t)

	var reply string
	for turn := 1; turn <= 13; turn++ {
		reply = s.ProcessResponse(fmt.Sprintf("Odpoveď číslo %d s dostatočným množstvom textu na analýzu.", turn))
		if turn <= 12 && strings.Contains(reply, "kompletná") {
			t.Fatalf("turn %d produced the summary too early:\n%s", turn, reply)
		}
	}

	if !strings.Contains(reply, "Dokumentácia procesu je kompletná") {
		t.Errorf("turn 13 should produce the terminal summary, got:\n%s", reply)
	}
	if !strings.Contains(reply, "Zložitosť procesu:") {
		t.Errorf("summary missing the complexity score:\n%s", reply)
	}
}

func TestContextAppendOnly(t *testing.T) {
	s := newTestSession(t)

	answers := []string{
		"Spracovanie objednávok v CRM systéme",
		"Obchod",
		"Manažér skontroluje objednávku a pošle email kolegovi z tímu.",
		"Niekedy to závisí od typu zákazníka, neviem presne.",
		"Vedúci oddelenia schvaľuje výnimky manuálne.",
	}

	var prevSystems, prevPeople, prevGaps int
	for _, answer := range answers {
		s.ProcessResponse(answer)
		ctx := s.Context()
		if len(ctx.MentionedSystems) < prevSystems {
			t.Fatalf("mentioned systems shrank: %d -> %d", prevSystems, len(ctx.MentionedSystems))
		}
		if len(ctx.MentionedPeople) < prevPeople {
			t.Fatalf("mentioned people shrank: %d -> %d", prevPeople, len(ctx.MentionedPeople))
		}
		if len(ctx.IdentifiedGaps) < prevGaps {
			t.Fatalf("identified gaps shrank: %d -> %d", prevGaps, len(ctx.IdentifiedGaps))
		}
		prevSystems = len(ctx.MentionedSystems)
		prevPeople = len(ctx.MentionedPeople)
		prevGaps = len(ctx.IdentifiedGaps)
	}

	if prevSystems == 0 {
		t.Error("expected at least one mentioned system after the CRM answer")
	}
	if prevGaps == 0 {
		t.Error("expected gaps after the hedging answer")
	}
}

func TestComplexityRecomputedNotAccumulated(t *testing.T) {
	s := newTestSession(t)

	// Two indicators: manual work + approvals.
	s.ProcessResponse("Všetko schvaľujeme manuálne, každý podpis ide cez vedúceho oddelenia osobne.")
	if got := s.Context().ComplexityScore; got != 4 {
		t.Errorf("complexity = %d, want 4 (2 indicators x 2)", got)
	}

	// A plain answer drops the score back down instead of adding up.
	s.ProcessResponse("Tento krok je jednoduchý a nemá žiadne zvláštnosti, trvá pár minút denne.")
	if got := s.Context().ComplexityScore; got != 1 {
		t.Errorf("complexity = %d, want 1 after an indicator-free answer", got)
	}
}

func TestHistorySnapshotsAreFrozen(t *testing.T) {
	s := newTestSession(t)

	s.ProcessResponse("Spracovanie objednávok v CRM systéme zákazníckeho centra.")
	snapshot := s.History()[0].Context
	systemsBefore := len(snapshot.MentionedSystems)

	s.ProcessResponse("Ďalší systém: ERP aplikácia na sklad a fakturáciu dodávateľov.")

	if len(s.History()[0].Context.MentionedSystems) != systemsBefore {
		t.Error("earlier snapshot changed after a later turn")
	}
}

func TestFollowUpTakesPriorityOverCannedQuestion(t *testing.T) {
	s := newTestSession(t)

	// An answer mentioning systems generates follow-ups.
	reply := s.ProcessResponse("Objednávky spracovávame v CRM systéme a v Exceli.")
	if !strings.Contains(reply, "Follow-up otázka:") {
		t.Errorf("expected a follow-up question, got:\n%s", reply)
	}

	// An answer with no evidence falls back to the canned question.
	s = newTestSession(t)
	reply = s.ProcessResponse("Ide o bežnú administratívnu agendu bez ničoho zvláštneho.")
	if strings.Contains(reply, "Follow-up otázka:") {
		t.Errorf("expected a canned question, got:\n%s", reply)
	}
	if !strings.Contains(reply, "Do akej kategórie") {
		t.Errorf("expected the first basic info question, got:\n%s", reply)
	}
}

func TestFinalizeBuildsRecord(t *testing.T) {
	s := newTestSession(t)

	answers := []string{
		"Spracovanie objednávok",                          // 1: name
		"Obchod",                                          // 2: category
		"Najprv prijmeme objednávku cez webový formulár.", // 3
		"Kto je zapojený: obchodník a sklad.",             // 4
		"Výsledky idú manažérovi predaja.",                // 5
		"Používame CRM a Excel.",                          // 6
		"Šablóny máme v zdieľanom disku.",                 // 7
		"Najčastejší problém sú chýbajúce údaje.",         // 8
		"Chyby riešime telefonicky so zákazníkom.",        // 9
	}
	for _, a := range answers {
		s.ProcessResponse(a)
	}

	record := s.Finalize()
	if record.Name != "Spracovanie objednávok" {
		t.Errorf("record name = %q", record.Name)
	}
	if record.Category != "Obchod" {
		t.Errorf("record category = %q", record.Category)
	}
	if !strings.Contains(record.Steps, "objednávku cez webový formulár") {
		t.Errorf("record steps missing flow answers: %q", record.Steps)
	}
	if !strings.Contains(record.Tools, "CRM a Excel") {
		t.Errorf("record tools missing resource answers: %q", record.Tools)
	}
	if !strings.Contains(record.CommonProblems, "chýbajúce údaje") {
		t.Errorf("record problems missing problem answers: %q", record.CommonProblems)
	}
	if record.AutomationReadiness < 1 || record.AutomationReadiness > 5 {
		t.Errorf("automation readiness %d out of range", record.AutomationReadiness)
	}
}
