package interview

// QuestionType is one interview phase. Phases advance in a fixed
// order driven purely by the turn count.
type QuestionType string

const (
	BasicInfo    QuestionType = "basic_info"
	ProcessFlow  QuestionType = "process_flow"
	Stakeholders QuestionType = "stakeholders"
	Resources    QuestionType = "resources"
	Problems     QuestionType = "problems"
	Automation   QuestionType = "automation"
	Optimization QuestionType = "optimization"
)

// phaseOrder is the fixed progression of the interview.
var phaseOrder = []QuestionType{
	BasicInfo,
	ProcessFlow,
	Stakeholders,
	Resources,
	Problems,
	Automation,
	Optimization,
}

// PhaseForTurn maps a 1-based turn count to its phase. It is total:
// any turn count resolves to some phase, with everything from turn 12
// up landing in Optimization.
func PhaseForTurn(turn int) QuestionType {
	switch {
	case turn <= 1:
		return BasicInfo
	case turn <= 3:
		return ProcessFlow
	case turn <= 5:
		return Stakeholders
	case turn <= 7:
		return Resources
	case turn <= 9:
		return Problems
	case turn <= 11:
		return Automation
	default:
		return Optimization
	}
}

// phaseStart is the first turn of each phase, used to cycle through
// the phase's question list by turn-within-phase.
var phaseStart = map[QuestionType]int{
	BasicInfo:    1,
	ProcessFlow:  2,
	Stakeholders: 4,
	Resources:    6,
	Problems:     8,
	Automation:   10,
	Optimization: 12,
}

// phaseQuestions holds the canned questions per phase, asked in order
// when the analyzer produced no follow-up.
var phaseQuestions = map[QuestionType][]string{
	BasicInfo: {
		"Do akej kategórie tento proces patrí? (obchod/výroba/administratíva/IT/HR)",
		"Kto je hlavný vlastník tohto procesu?",
		"Ako často sa tento proces vykonáva?",
	},
	ProcessFlow: {
		"Popíšte mi prvý krok tohto procesu - čo presne sa deje?",
		"Aký je nasledujúci krok? Kto ho vykonáva a v akom systéme?",
		"Sú v procese nejaké rozhodnutia alebo vetvenia?",
	},
	Stakeholders: {
		"Kto všetko je zapojený do tohto procesu?",
		"Aké sú ich konkrétne role a zodpovednosti?",
		"Komu sa výsledky procesu komunikujú?",
	},
	Resources: {
		"Aké systémy a nástroje sa používajú?",
		"Aké dokumenty alebo šablóny potrebujete?",
		"Sú nejaké externé závislosti?",
	},
	Problems: {
		"Aké sú najčastejšie problémy v tomto procese?",
		"Ako často sa vyskytujú chyby alebo zdržania?",
		"Ako sa tieto problémy riešia?",
	},
	Automation: {
		"Ktoré časti procesu sú už automatizované?",
		"Čo sa robí manuálne a prečo?",
		"Aké vidíte možnosti pre automatizáciu?",
	},
	Optimization: {
		"Čo by sa dalo v procese zlepšiť?",
		"Aké sú najväčšie úzke miesta?",
		"Ako by vyzeral ideálny stav tohto procesu?",
	},
}

// QuestionForTurn returns the canned question for a turn, cycling
// through the phase's list by the turn's offset within the phase.
func QuestionForTurn(turn int) string {
	phase := PhaseForTurn(turn)
	questions := phaseQuestions[phase]
	index := (turn - phaseStart[phase]) % len(questions)
	if index < 0 {
		index = 0
	}
	return questions[index]
}
