package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adsun-ai/adsun/internal/process"
)

// composeStatistics renders the aggregate counts. The numbers are kept
// parseable: "Celkom: N procesov, K kategórií, V vlastníkov".
func composeStatistics(counts process.Counts) string {
	if counts.Total == 0 {
		return "0 procesov v databáze."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Celkom: %d procesov", counts.Total)
	if len(counts.Categories) > 0 {
		fmt.Fprintf(&b, ", %d kategórií", len(counts.Categories))
	}
	if len(counts.Owners) > 0 {
		fmt.Fprintf(&b, ", %d vlastníkov", len(counts.Owners))
	}

	if top := counts.TopCategories(3); len(top) > 0 {
		b.WriteString("\n\nNajviac procesov:")
		for _, g := range top {
			fmt.Fprintf(&b, "\n• %s: %d", g.Name, g.Count)
		}
	}
	return b.String()
}

// composeList renders all records grouped by category. Records without
// a category land under "Ostatné".
func composeList(records []process.Record) string {
	if len(records) == 0 {
		return "Žiadne procesy v databáze."
	}

	byCategory := map[string][]process.Record{}
	for _, r := range records {
		cat := r.Category
		if cat == "" {
			cat = "Ostatné"
		}
		byCategory[cat] = append(byCategory[cat], r)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "Procesy (%d):\n", len(records))
	for _, cat := range categories {
		fmt.Fprintf(&b, "\n%s:\n", cat)
		for _, r := range byCategory[cat] {
			b.WriteString("• " + r.Name)
			if r.Owner != "" {
				b.WriteString(" - " + r.Owner)
			}
			if r.DurationMinutes > 0 {
				fmt.Fprintf(&b, " (%dmin)", r.DurationMinutes)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// departmentInfo is one category viewed as a department: its processes,
// owners and average automation readiness.
type departmentInfo struct {
	name          string
	processCount  int
	owners        []string
	avgAutomation float64
}

// composeDepartments derives a department overview from process
// categories: each category with its process count, average automation
// readiness and the people working in it.
func composeDepartments(records []process.Record) string {
	if len(records) == 0 {
		return "Žiadne oddelenia. Pridajte procesy s kategóriami (obchod, HR, IT...) a oddelenia sa odvodia automaticky."
	}

	depts := deriveDepartments(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Oddelenia (%d, odvodené z procesov):\n", len(depts))
	for _, d := range depts {
		fmt.Fprintf(&b, "\n%s:\n", d.name)
		fmt.Fprintf(&b, "• Procesy: %d\n", d.processCount)
		fmt.Fprintf(&b, "• Automatizácia: %.1f/5\n", d.avgAutomation)
		if len(d.owners) > 0 {
			shown := d.owners
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Fprintf(&b, "• Tím: %s\n", strings.Join(shown, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func deriveDepartments(records []process.Record) []departmentInfo {
	byCategory := map[string]*departmentInfo{}
	var order []string

	for _, r := range records {
		if r.Category == "" {
			continue
		}
		d, ok := byCategory[r.Category]
		if !ok {
			d = &departmentInfo{name: r.Category}
			byCategory[r.Category] = d
			order = append(order, r.Category)
		}
		d.processCount++
		d.avgAutomation += float64(r.AutomationReadiness)
		if r.Owner != "" && !containsString(d.owners, r.Owner) {
			d.owners = append(d.owners, r.Owner)
		}
	}

	depts := make([]departmentInfo, 0, len(order))
	for _, cat := range order {
		d := byCategory[cat]
		d.avgAutomation /= float64(d.processCount)
		depts = append(depts, *d)
	}
	sort.SliceStable(depts, func(i, j int) bool {
		return depts[i].processCount > depts[j].processCount
	})
	return depts
}

// composeCategories renders the category breakdown with counts and
// average durations.
func composeCategories(records []process.Record) string {
	if len(records) == 0 {
		return "Žiadne kategórie. Zadajte kategóriu pri vytváraní procesu."
	}

	type catInfo struct {
		name     string
		count    int
		duration int
		withTime int
	}
	byCategory := map[string]*catInfo{}
	var order []string

	for _, r := range records {
		cat := r.Category
		if cat == "" {
			cat = "Ostatné"
		}
		c, ok := byCategory[cat]
		if !ok {
			c = &catInfo{name: cat}
			byCategory[cat] = c
			order = append(order, cat)
		}
		c.count++
		if r.DurationMinutes > 0 {
			c.duration += r.DurationMinutes
			c.withTime++
		}
	}

	cats := make([]*catInfo, 0, len(order))
	for _, name := range order {
		cats = append(cats, byCategory[name])
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].count > cats[j].count })

	var b strings.Builder
	fmt.Fprintf(&b, "Kategórie (%d):\n", len(cats))
	for _, c := range cats {
		fmt.Fprintf(&b, "• %s: %d", c.name, c.count)
		if c.withTime > 0 {
			fmt.Fprintf(&b, " (%dmin priemer)", c.duration/c.withTime)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// composePeople renders owners with their process counts and areas.
func composePeople(records []process.Record) string {
	type personInfo struct {
		name       string
		count      int
		categories []string
	}
	byOwner := map[string]*personInfo{}
	var order []string

	for _, r := range records {
		if r.Owner == "" {
			continue
		}
		p, ok := byOwner[r.Owner]
		if !ok {
			p = &personInfo{name: r.Owner}
			byOwner[r.Owner] = p
			order = append(order, r.Owner)
		}
		p.count++
		if r.Category != "" && !containsString(p.categories, r.Category) {
			p.categories = append(p.categories, r.Category)
		}
	}

	if len(order) == 0 {
		return "Žiadne pozície zadefinované. Pri dokumentovaní procesu zadajte vlastníka a systém si zapamätá, kto za čo zodpovedá."
	}

	people := make([]*personInfo, 0, len(order))
	for _, name := range order {
		people = append(people, byOwner[name])
	}
	sort.SliceStable(people, func(i, j int) bool { return people[i].count > people[j].count })

	var b strings.Builder
	b.WriteString("Pozície a zodpovednosti:\n")
	for _, p := range people {
		fmt.Fprintf(&b, "\n%s:\n• %d procesov\n", p.name, p.count)
		if len(p.categories) > 0 {
			fmt.Fprintf(&b, "• Oblasti: %s\n", strings.Join(p.categories, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// composePricing is a canned answer; pricing methodology lives in
// documented processes, not in a dedicated price list.
func composePricing(query string) string {
	return fmt.Sprintf(`Nenašiel som cenník pre: %q

Cenotvorba sa dokumentuje ako proces. Zdokumentujte proces "Tvorba cenovej ponuky" s faktormi ako materiál, práca a marža, a potom sa môžete pýtať na konkrétne nacenenie.`, query)
}

// composeOffTopic politely declines questions outside the domain.
func composeOffTopic(query string) string {
	return fmt.Sprintf(`%q

Toto nie je o firemných procesoch. Som asistent pre vaše procesy a dokumentáciu. Spýtajte sa radšej na niečo o vašej firme!`, query)
}

// composeNoAI explains what still works without a configured model.
func composeNoAI(query string) string {
	return fmt.Sprintf(`AI asistent nemá nakonfigurovaný jazykový model, otázku %q neviem analyzovať inteligentne.

Nastavte API kľúč (ANTHROPIC_API_KEY alebo OPENAI_API_KEY) alebo lokálny Ollama server.

Zatiaľ môžete skúsiť:
• "Koľko procesov mám?" - základné štatistiky
• "Všetky procesy" - zoznam všetkého`, query)
}

// composeProcessDetail renders the detail view of one found record.
func composeProcessDetail(r process.Record, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proces nájdený pre %q:\n\n", query)
	fmt.Fprintf(&b, "%s\n", r.Name)
	fmt.Fprintf(&b, "• Kategória: %s\n", orDefault(r.Category, "neurčená"))
	fmt.Fprintf(&b, "• Vlastník: %s\n", orDefault(r.Owner, "neurčený"))
	if r.DurationMinutes > 0 {
		fmt.Fprintf(&b, "• Trvanie: %d minút\n", r.DurationMinutes)
	}
	fmt.Fprintf(&b, "• Automatizácia: %d/5\n", r.AutomationReadiness)

	if r.Description != "" {
		fmt.Fprintf(&b, "\nPopis:\n%s\n", r.Description)
	}
	if r.Steps != "" {
		fmt.Fprintf(&b, "\nKroky procesu:\n%s\n", r.Steps)
	}
	if r.Tools != "" {
		fmt.Fprintf(&b, "\nPoužívané nástroje:\n%s\n", r.Tools)
	}
	if r.Risks != "" {
		fmt.Fprintf(&b, "\nRiziká:\n%s\n", r.Risks)
	}
	return strings.TrimRight(b.String(), "\n")
}

// composeApology is the per-handler error rendering: a short message
// naming the failed operation, never a raw error dump.
func composeApology(operation string) string {
	return fmt.Sprintf("Prepáčte, %s sa nepodarilo. Skúste to prosím znova, alebo použite dokumentačný rozhovor.", operation)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
