package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adsun-ai/adsun/internal/db"
	"github.com/adsun-ai/adsun/internal/process"
)

func setupGenerator(t *testing.T) (*Generator, *process.Store, string) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := process.NewStore(database)
	outDir := t.TempDir()
	return NewGenerator(store, outDir, "Firemné procesy"), store, outDir
}

func TestGenerateEmptyStoreFails(t *testing.T) {
	gen, _, _ := setupGenerator(t)

	if _, err := gen.Generate(context.Background()); err == nil {
		t.Error("expected an error for an empty store")
	}
}

func TestGenerateWritesPages(t *testing.T) {
	gen, store, outDir := setupGenerator(t)
	ctx := context.Background()

	saved, err := store.Create(ctx, process.Record{
		Name:                "Fakturácia dodávateľom",
		Category:            "Financie",
		Owner:               "Mária",
		Description:         "Spracovanie došlých faktúr.",
		Steps:               "1. Prijať faktúru\n2. Overiť sumu",
		AutomationReadiness: 4,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Create(ctx, process.Record{Name: "Nábor zamestnancov", Category: "HR"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 2 {
		t.Errorf("generated %d pages, want 2", n)
	}

	for _, name := range []string{"index.html", "style.css", filepath.Join("processes", saved.ID+".html")} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(outDir, "processes", saved.ID+".html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	for _, want := range []string{
		"Fakturácia dodávateľom",
		"Spracovanie došlých faktúr",
		"Pripravenosť na automatizáciu:</strong> 4/5",
	} {
		if !strings.Contains(string(page), want) {
			t.Errorf("page missing %q", want)
		}
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	for _, want := range []string{"Financie", "HR", "processes/" + saved.ID + ".html"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestRecordMarkdownSkipsEmptySections(t *testing.T) {
	md := recordMarkdown(process.Record{Name: "Nábor", Category: "HR"})

	if !strings.Contains(md, "# Nábor") {
		t.Errorf("missing title:\n%s", md)
	}
	if strings.Contains(md, "## Kroky") {
		t.Errorf("empty steps section should be omitted:\n%s", md)
	}
}

func TestBuildNavGroupsAndSorts(t *testing.T) {
	nav := buildNav([]process.Record{
		{ID: "1", Name: "Uzávierka", Category: "Financie"},
		{ID: "2", Name: "Fakturácia", Category: "Financie"},
		{ID: "3", Name: "Bez kategórie"},
	})

	if len(nav) != 2 {
		t.Fatalf("got %d groups, want 2", len(nav))
	}
	if nav[0].Category != "Financie" || nav[1].Category != "Ostatné" {
		t.Errorf("unexpected group order: %q, %q", nav[0].Category, nav[1].Category)
	}
	if nav[0].Entries[0].Name != "Fakturácia" {
		t.Errorf("entries not sorted by name: %+v", nav[0].Entries)
	}
}
