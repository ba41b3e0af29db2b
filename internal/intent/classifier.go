package intent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adsun-ai/adsun/internal/fold"
	"github.com/adsun-ai/adsun/internal/llm"
	"github.com/adsun-ai/adsun/internal/process"
)

// Classifier resolves query intents. A nil client is a valid
// configuration; classification then reports NoAIAvailable and the
// engine answers from deterministic paths only.
type Classifier struct {
	client llm.Client
}

// NewClassifier creates a Classifier. client may be nil.
func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

const classifyPrompt = `Si expert na analýzu používateľských otázok o firemných procesoch.

KONTEXT DATABÁZY:
%s

Analyzuj otázku používateľa a rozhodni, ktorý typ odpovede potrebuje:

TYPY INTENTOV:
- "statistics" - chce ČÍSELNÉ štatistiky/počty (koľko, počet, stats)
- "departments" - pýta sa na oddelenia/organizáciu
- "list_all" - chce ZOZNAM/VÝPIS konkrétnych položiek (všetky, zoznam, zobraz, vypíš)
- "find_process" - hľadá konkrétny proces (ako robiť niečo)
- "people_roles" - pýta sa na ľudí/pozície/zodpovednosti
- "pricing" - pýta sa na ceny/cenník
- "categories" - pýta sa na kategórie/typy
- "general_search" - všeobecné vyhľadávanie
- "off_topic" - otázka nesúvisí s firemnými procesmi (osobné veci, jedlo, počasie...)

KĽÚČOVÉ ROZLÍŠENIE:
- "koľko procesov mám" → statistics (chce ČÍSLO)
- "všetky procesy" → list_all (chce ZOZNAM NÁZVOV)

Odpovedz len jedným z uvedených typov.`

// Classify resolves the intent of a query together with a confidence
// estimate. It never fails: LLM errors degrade to the keyword
// fallback, and a missing client short-circuits to NoAIAvailable.
func (c *Classifier) Classify(ctx context.Context, query string, counts process.Counts) (Intent, float64) {
	if c.client == nil {
		return NoAIAvailable, 0.0
	}

	reply, err := c.client.Complete(ctx, llm.Request{
		System:      fmt.Sprintf(classifyPrompt, summarize(counts)),
		User:        fmt.Sprintf("Otázka používateľa: %q", query),
		MaxTokens:   50,
		Temperature: 0.1,
	})
	if err != nil {
		log.Printf("intent: classification call failed, using keyword fallback: %v", err)
		return Fallback(query)
	}

	return ParseReply(reply)
}

// ParseReply maps a free-text LLM reply onto the intent vocabulary by
// case-insensitive substring containment, in the fixed precedence
// order. Unrecognized replies default to GeneralSearch.
func ParseReply(reply string) (Intent, float64) {
	lower := strings.ToLower(strings.TrimSpace(reply))
	for _, in := range parseOrder {
		if strings.Contains(lower, string(in)) {
			return in, 0.9
		}
	}
	return GeneralSearch, 0.6
}

// summarize renders the store contents compactly for the prompt:
// total count plus up to 5 categories and owners with counts.
func summarize(counts process.Counts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "V databáze je %d procesov celkom.\n", counts.Total)

	b.WriteString("Kategórie: ")
	b.WriteString(bucketList(counts.TopCategories(5)))
	b.WriteString("\nVlastníci: ")
	b.WriteString(bucketList(counts.TopOwners(5)))

	return b.String()
}

func bucketList(groups []process.GroupCount) string {
	if len(groups) == 0 {
		return "žiadne"
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s (%d×)", g.Name, g.Count)
	}
	return strings.Join(parts, ", ")
}

// Keyword sets for the fallback path, in folded form.
var (
	statisticsWords  = []string{"kolko", "pocet", "stats", "statistik"}
	listWords        = []string{"vsetky", "zoznam", "zobraz", "ukaz", "vypis", "show", "list"}
	departmentsWords = []string{"oddelen", "diviz", "organizac", "struktur"}
	processWords     = []string{"ako", "proces", "postup"}
)

// Fallback classifies by keyword rules alone, evaluated in fixed
// priority order. It is total: every query resolves to some intent.
func Fallback(query string) (Intent, float64) {
	q := fold.String(query)

	switch {
	case containsAny(q, statisticsWords):
		return Statistics, 0.8
	case containsAny(q, listWords):
		return ListAll, 0.8
	case containsAny(q, departmentsWords):
		return Departments, 0.7
	case containsAny(q, processWords):
		return FindProcess, 0.7
	default:
		return GeneralSearch, 0.5
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
