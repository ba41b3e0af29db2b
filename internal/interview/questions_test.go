package interview

import "testing"

func TestPhaseForTurnLadder(t *testing.T) {
	tests := []struct {
		turn int
		want QuestionType
	}{
		{1, BasicInfo},
		{2, ProcessFlow},
		{3, ProcessFlow},
		{4, Stakeholders},
		{5, Stakeholders},
		{6, Resources},
		{7, Resources},
		{8, Problems},
		{9, Problems},
		{10, Automation},
		{11, Automation},
		{12, Optimization},
		{13, Optimization},
		{99, Optimization},
	}

	for _, tt := range tests {
		if got := PhaseForTurn(tt.turn); got != tt.want {
			t.Errorf("PhaseForTurn(%d) = %q, want %q", tt.turn, got, tt.want)
		}
	}
}

func TestPhaseMonotonicity(t *testing.T) {
	rank := map[QuestionType]int{}
	for i, phase := range phaseOrder {
		rank[phase] = i
	}

	prev := PhaseForTurn(1)
	for turn := 2; turn <= 12; turn++ {
		cur := PhaseForTurn(turn)
		if rank[cur] < rank[prev] {
			t.Errorf("phase went backwards at turn %d: %q after %q", turn, cur, prev)
		}
		prev = cur
	}
}

func TestQuestionForTurnCyclesWithinPhase(t *testing.T) {
	// Consecutive turns of the same phase ask different questions.
	if QuestionForTurn(2) == QuestionForTurn(3) {
		t.Error("turns 2 and 3 should cycle through the process flow questions")
	}
	if QuestionForTurn(2) != phaseQuestions[ProcessFlow][0] {
		t.Errorf("turn 2 question = %q, want the first process flow question", QuestionForTurn(2))
	}
	if QuestionForTurn(3) != phaseQuestions[ProcessFlow][1] {
		t.Errorf("turn 3 question = %q, want the second process flow question", QuestionForTurn(3))
	}
}

func TestQuestionForTurnTotal(t *testing.T) {
	for turn := 1; turn <= 20; turn++ {
		if QuestionForTurn(turn) == "" {
			t.Errorf("QuestionForTurn(%d) returned an empty question", turn)
		}
	}
}
