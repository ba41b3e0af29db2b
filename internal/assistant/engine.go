// Package assistant answers free-text questions about the process
// knowledge base. A query is classified to an intent, dispatched to a
// deterministic handler over the store, and rendered as Slovak text;
// the LLM is consulted for classification and semantic lookups but
// every path has a working fallback without it.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adsun-ai/adsun/internal/fold"
	"github.com/adsun-ai/adsun/internal/intent"
	"github.com/adsun-ai/adsun/internal/llm"
	"github.com/adsun-ai/adsun/internal/matcher"
	"github.com/adsun-ai/adsun/internal/process"
)

// ProcessSource is the narrow store contract the engine reads through.
type ProcessSource interface {
	GetActiveProcesses(ctx context.Context) ([]process.Record, error)
	AggregateCounts(ctx context.Context) (process.Counts, error)
}

// Engine resolves knowledge queries. It is stateless between calls and
// safe for concurrent use as long as the store is.
type Engine struct {
	store      ProcessSource
	classifier *intent.Classifier
	client     llm.Client
}

// NewEngine creates an Engine. client may be nil; the engine then
// serves deterministic answers only.
func NewEngine(store ProcessSource, client llm.Client) *Engine {
	return &Engine{
		store:      store,
		classifier: intent.NewClassifier(client),
		client:     client,
	}
}

// Answer resolves one query to a human-readable answer. It never
// returns an error: handler failures render as apologetic messages.
func (e *Engine) Answer(ctx context.Context, query string) string {
	query = strings.ToLower(strings.TrimSpace(query))

	counts, countsErr := e.store.AggregateCounts(ctx)
	if countsErr != nil {
		log.Printf("assistant: aggregate counts unavailable: %v", countsErr)
	}

	in, confidence := e.classifier.Classify(ctx, query, counts)
	log.Printf("assistant: query %q classified as %s (%.1f)", query, in, confidence)

	switch in {
	case intent.NoAIAvailable:
		return composeNoAI(query)
	case intent.OffTopic:
		return composeOffTopic(query)
	case intent.Pricing:
		return composePricing(query)
	case intent.Statistics:
		if countsErr != nil {
			return composeApology("načítať štatistiky")
		}
		return composeStatistics(counts)
	case intent.ListAll:
		return e.withRecords(ctx, "vypísať zoznam procesov", composeList)
	case intent.Departments:
		return e.withRecords(ctx, "načítať oddelenia", composeDepartments)
	case intent.Categories:
		return e.withRecords(ctx, "načítať kategórie", composeCategories)
	case intent.PeopleRoles:
		return e.withRecords(ctx, "načítať pozície", composePeople)
	case intent.FindProcess:
		return e.findProcess(ctx, query)
	case intent.GeneralSearch:
		return e.generalSearch(ctx, query)
	default:
		return e.freeformAnswer(ctx, query, counts)
	}
}

// withRecords loads active records and renders them, converting a
// store failure into an apology naming the operation.
func (e *Engine) withRecords(ctx context.Context, operation string, render func([]process.Record) string) string {
	records, err := e.store.GetActiveProcesses(ctx)
	if err != nil {
		log.Printf("assistant: %s failed: %v", operation, err)
		return composeApology(operation)
	}
	return render(records)
}

const semanticFindPrompt = `Si expert na vyhľadávanie firemných procesov.

DOSTUPNÉ PROCESY:
%s

Používateľ hľadá proces. Nájdi NAJLEPŠÍ zhodný proces zo zoznamu na základe sémantického významu, nie presnej zhody textu.

Príklady:
- "dopyt polep auta" = "objednávky zákazníkov"
- "faktúra dodávateľa" = "fakturácia"
- "dovolenka zamestnanca" = "schvaľovanie dovoleniek"

Odpoveď musí byť presný názov procesu zo zoznamu, alebo "NENÁJDENÝ" ak nič podobné neexistuje.`

// findProcess looks up one concrete process. With a client available
// it asks the model to pick the semantically closest name; otherwise,
// or when the pick does not resolve, it degrades to keyword scoring.
func (e *Engine) findProcess(ctx context.Context, query string) string {
	records, err := e.store.GetActiveProcesses(ctx)
	if err != nil {
		log.Printf("assistant: process lookup failed: %v", err)
		return composeApology("vyhľadať proces")
	}
	if len(records) == 0 {
		return "Žiadne procesy v databáze. Zdokumentujte prvý proces cez dokumentačný rozhovor."
	}

	if e.client != nil {
		if r := e.semanticPick(ctx, query, records); r != nil {
			return composeProcessDetail(*r, query)
		}
	}

	if best := matcher.Best(query, records, matcher.GeneralThreshold); best != nil {
		return composeProcessDetail(best.Record, query)
	}
	return e.suggest(ctx, query)
}

// semanticPick asks the model for the best-matching name and resolves
// the reply against the record list. The reply counts as a match when
// it contains a known name or a known name contains it, after folding.
func (e *Engine) semanticPick(ctx context.Context, query string, records []process.Record) *process.Record {
	var names []string
	for _, r := range records {
		names = append(names, fmt.Sprintf("- %s (kategória: %s, vlastník: %s)", r.Name, r.Category, r.Owner))
	}

	reply, err := e.client.Complete(ctx, llm.Request{
		System:      fmt.Sprintf(semanticFindPrompt, strings.Join(names, "\n")),
		User:        fmt.Sprintf("Používateľ hľadá: %q", query),
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("assistant: semantic lookup failed, falling back to keyword scoring: %v", err)
		return nil
	}

	picked := fold.String(strings.TrimSpace(reply))
	if picked == "" {
		return nil
	}
	for i, r := range records {
		name := fold.String(r.Name)
		if strings.Contains(picked, name) || strings.Contains(name, picked) {
			return &records[i]
		}
	}
	return nil
}

// generalSearch scores all active records at the low threshold and
// falls back to suggestions when nothing clears it.
func (e *Engine) generalSearch(ctx context.Context, query string) string {
	records, err := e.store.GetActiveProcesses(ctx)
	if err != nil {
		log.Printf("assistant: general search failed: %v", err)
		return composeApology("vyhľadať v procesoch")
	}

	if best := matcher.Best(query, records, matcher.GeneralThreshold); best != nil {
		return composeProcessDetail(best.Record, query)
	}
	return e.suggest(ctx, query)
}

// freeformAnswer covers intent values without a dedicated handler: a
// model-authored answer grounded in the store summary, or the no-AI
// template without a client.
func (e *Engine) freeformAnswer(ctx context.Context, query string, counts process.Counts) string {
	if e.client == nil {
		return composeNoAI(query)
	}

	reply, err := e.client.Complete(ctx, llm.Request{
		System: fmt.Sprintf(
			"Si asistent pre firemné procesy. V databáze je %d procesov. Odpovedz stručne po slovensky.",
			counts.Total),
		User:        query,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("assistant: freeform answer failed: %v", err)
		return composeApology("odpovedať na otázku")
	}
	return reply
}
