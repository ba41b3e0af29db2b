package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adsun-ai/adsun/internal/fold"
	"github.com/adsun-ai/adsun/internal/process"
)

// stopWords are discarded during keyword extraction, in folded form.
var stopWords = map[string]bool{
	"ako": true, "co": true, "kde": true, "kedy": true, "preco": true,
	"the": true, "and": true, "or": true,
}

// Pattern words that map a failed query onto a suggested rephrasing.
var (
	quantityPattern = []string{"kolko", "pocet", "count", "mam"}
	listPattern     = []string{"vsetky", "zoznam", "zobraz", "ukaz", "show"}
	rolePattern     = []string{"kto", "who", "pozic", "zodpoved"}
	processPattern  = []string{"ako", "how", "proces", "postup"}
)

var genericSuggestions = []string{
	`• "Koľko procesov mám?" - štatistiky a prehľad`,
	`• "Všetky procesy" - kompletný zoznam`,
	`• "Aké kategórie mám?" - typy procesov`,
	`• "Kto za čo zodpovedá?" - organizácia`,
}

// suggest builds the fallback answer when no record clears the
// confidence threshold: similar records found by keyword, plus
// rephrasing hints derived from the query.
func (e *Engine) suggest(ctx context.Context, query string) string {
	keywords := extractKeywords(query)
	similar := e.similarRecords(ctx, keywords)

	var b strings.Builder
	fmt.Fprintf(&b, "Hľadám: %q\n\nPresný proces nenájdený.\n", query)

	if len(similar) > 0 {
		b.WriteString("\nMožno ste mysleli:\n")
		for _, r := range similar {
			fmt.Fprintf(&b, "• %s (%s)\n", r.Name, orDefault(r.Category, "bez kategórie"))
		}
	}

	b.WriteString("\nNávrhy:\n")
	b.WriteString(strings.Join(rephrasings(query), "\n"))
	return b.String()
}

// extractKeywords drops short tokens and stop words, keeping folded
// forms for the record matching.
func extractKeywords(query string) []string {
	var keywords []string
	for _, word := range strings.Fields(fold.String(query)) {
		if len([]rune(word)) <= 3 || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// similarRecords matches up to 3 keywords against the active records
// and unions at most 3 records unique by name. Both sides are folded,
// so a keyword like "maria" finds the owner "Mária".
func (e *Engine) similarRecords(ctx context.Context, keywords []string) []process.Record {
	if len(keywords) == 0 {
		return nil
	}
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	records, err := e.store.GetActiveProcesses(ctx)
	if err != nil {
		log.Printf("assistant: similar record lookup failed: %v", err)
		return nil
	}

	var similar []process.Record
	seen := map[string]bool{}
	for _, word := range keywords {
		for _, r := range records {
			if seen[r.Name] || len(similar) >= 3 {
				continue
			}
			if keywordMatches(word, r) {
				seen[r.Name] = true
				similar = append(similar, r)
			}
		}
	}
	return similar
}

func keywordMatches(word string, r process.Record) bool {
	return fold.Contains(r.Name, word) ||
		fold.Contains(r.Category, word) ||
		fold.Contains(r.Owner, word) ||
		fold.Contains(r.Tags, word)
}

// rephrasings returns one canned suggested rephrasing per recognized
// word pattern, or the 4 generic suggestions when nothing matched.
func rephrasings(query string) []string {
	words := strings.Fields(fold.String(query))
	hasWord := func(pattern []string) bool {
		for _, w := range words {
			for _, p := range pattern {
				if strings.Contains(w, p) {
					return true
				}
			}
		}
		return false
	}

	var suggestions []string
	if hasWord(quantityPattern) {
		suggestions = append(suggestions, `• "Koľko procesov mám?" - zobrazí presné čísla a štatistiky`)
	}
	if hasWord(listPattern) {
		suggestions = append(suggestions, `• "Všetky procesy" - kompletný zoznam všetkého`)
	}
	if hasWord(rolePattern) {
		suggestions = append(suggestions, `• "Kto za čo zodpovedá?" - organizačná štruktúra`)
	}
	if hasWord(processPattern) {
		suggestions = append(suggestions, `• "Proces realizácie" - hľadá konkrétne kroky`)
	}

	if len(suggestions) == 0 {
		return genericSuggestions
	}
	return suggestions
}
