package analyzer

// Category names one interview answer can provide evidence for.
const (
	CategorySystems    = "systems"
	CategoryPeople     = "people"
	CategoryDecisions  = "decisions"
	CategoryProblems   = "problems"
	CategoryFrequency  = "frequency"
	CategoryAutomation = "automation"
)

// categoryOrder fixes the iteration order over the vocabulary so that
// analysis output and follow-up questions are deterministic.
var categoryOrder = []string{
	CategorySystems,
	CategoryPeople,
	CategoryDecisions,
	CategoryProblems,
	CategoryFrequency,
	CategoryAutomation,
}

// categoryVocab maps each category to its trigger words. Triggers are
// stored in folded form (lowercase, no diacritics) and matched as
// substrings, so stems like "schval" cover the inflected forms
// "schválenie", "schvaľuje" and "schvaľovať".
var categoryVocab = map[string][]string{
	CategorySystems:    {"system", "aplikac", "nastroj", "software", "excel", "email", "crm", "erp"},
	CategoryPeople:     {"manazer", "veduc", "zodpovedn", "tim", "koleg", "oddelen"},
	CategoryDecisions:  {"rozhodnut", "schval", "posud", "kontrol", "overen"},
	CategoryProblems:   {"problem", "chyb", "komplikac", "zdrzan", "vynim"},
	CategoryFrequency:  {"denne", "tyzdenne", "mesacne", "obcas", "pravidelne"},
	CategoryAutomation: {"automaticky", "manualne", "rucne", "automatizac"},
}

// Gap descriptions surfaced to the interviewer.
const (
	gapTooShort       = "answer too short, more detail needed"
	gapUnclear        = "unclear, needs clarification"
	gapConditional    = "conditional logic, needs scenario mapping"
	gapVagueFrequency = "indeterminate frequency, needs quantification"
)

// complexitySignal pairs one complexity label with the folded trigger
// words that raise it.
type complexitySignal struct {
	label    string
	triggers []string
}

var complexitySignals = []complexitySignal{
	{"multiple systems", []string{"viac systemov", "rozne aplikacie", "prepojenie"}},
	{"decision branches", []string{"podmienk", "zavisi", "rozhodnut", "vetven"}},
	{"manual work", []string{"manualne", "rucne", "osobne", "telefonicky"}},
	{"exceptions", []string{"vynimk", "specialny pripad", "niekedy inak"}},
	{"approvals", []string{"schval", "povolen", "suhlas", "podpis"}},
}

// Automation signal labels. Exactly one is emitted per analysis.
const (
	SignalHighAutomation = "high automation potential"
	SignalHumanJudgment  = "requires human judgment"
	SignalPartial        = "partial automation possible"
)

var automationPositive = []string{
	"rovnake kroky", "standardny postup", "vzdy rovnako",
	"jednoduche pravidla", "digitalne data",
}

var automationNegative = []string{
	"ludske posuden", "kreativne riesen", "individualny pristup",
	"komplexne rozhodnut", "vynimk", "manualne", "rucne",
}

// followUpTemplates holds up to two follow-up questions per category.
// Frequency and automation evidence is reflected in gaps and signals
// instead of questions, so those categories carry none.
var followUpTemplates = map[string][]string{
	CategorySystems: {
		"Aké konkrétne funkcie v týchto systémoch používate?",
		"Ako často sa tieto systémy pokazia alebo nefungujú?",
	},
	CategoryPeople: {
		"Aké sú presné roly týchto ľudí v procese?",
		"Čo sa stane, keď nie sú dostupní?",
	},
	CategoryDecisions: {
		"Podľa akých kritérií sa tieto rozhodnutia robia?",
		"Kto má finálne slovo pri sporných prípadoch?",
	},
	CategoryProblems: {
		"Ako často sa tieto problémy vyskytujú?",
		"Aké sú súčasné riešenia týchto problémov?",
	},
}

const (
	followUpManual = "Čo konkrétne robíte manuálne a prečo nie je to automatizované?"
	followUpEmail  = "Aké informácie sa posielajú v emailoch a komu?"
)
