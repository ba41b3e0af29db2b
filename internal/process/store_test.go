package process

import (
	"context"
	"testing"

	"github.com/adsun-ai/adsun/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestCreateAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	saved, err := store.Create(ctx, Record{
		Name:                "Spracovanie faktúr",
		Category:            "Financie",
		Owner:               "Mária",
		Frequency:           "denne",
		AutomationReadiness: 3,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if saved.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if !saved.Active {
		t.Error("Create() should mark the record active")
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for an existing record")
	}
	if got.Name != "Spracovanie faktúr" {
		t.Errorf("Get() name = %q, want %q", got.Name, "Spracovanie faktúr")
	}
	if got.AutomationReadiness != 3 {
		t.Errorf("Get() automation readiness = %d, want 3", got.AutomationReadiness)
	}
}

func TestUpdate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	saved, err := store.Create(ctx, Record{Name: "Nábor", Category: "HR"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	saved.Owner = "Peter"
	saved.Description = "Nábor nových zamestnancov."
	if err := store.Update(ctx, *saved); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Owner != "Peter" || got.Description != "Nábor nových zamestnancov." {
		t.Errorf("Update() not persisted: %+v", got)
	}

	if err := store.Update(ctx, Record{ID: "no-such-id", Name: "x"}); err == nil {
		t.Error("Update() of a missing record should fail")
	}
}

func TestGetMissing(t *testing.T) {
	store := setupStore(t)

	got, err := store.Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil for missing record", got)
	}
}

func TestCreateClampsReadiness(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero clamps to minimum", 0, 1},
		{"above range clamps to maximum", 9, 5},
		{"in range unchanged", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved, err := store.Create(ctx, Record{Name: "P", AutomationReadiness: tt.in})
			if err != nil {
				t.Fatalf("Create() error: %v", err)
			}
			if saved.AutomationReadiness != tt.want {
				t.Errorf("readiness = %d, want %d", saved.AutomationReadiness, tt.want)
			}
		})
	}
}

func TestDeactivateHidesRecord(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	saved, err := store.Create(ctx, Record{Name: "Objednávky"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := store.Deactivate(ctx, saved.ID); err != nil {
		t.Fatalf("Deactivate() error: %v", err)
	}

	records, err := store.GetActiveProcesses(ctx)
	if err != nil {
		t.Fatalf("GetActiveProcesses() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("GetActiveProcesses() returned %d records after deactivation, want 0", len(records))
	}

	// The record itself survives, only the flag changes.
	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil, deactivation should not delete")
	}
	if got.Active {
		t.Error("record still active after Deactivate()")
	}
}

func TestFindBySubstring(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	seed := []Record{
		{Name: "Fakturácia dodávateľom", Category: "Financie", Owner: "Mária"},
		{Name: "Nábor zamestnancov", Category: "HR", Owner: "Peter"},
		{Name: "Mesačná uzávierka", Category: "Financie", Owner: "Mária", Tags: "faktúry, účtovníctvo"},
	}
	for _, r := range seed {
		if _, err := store.Create(ctx, r); err != nil {
			t.Fatalf("Create(%s) error: %v", r.Name, err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"matches name", "Fakturácia", 1},
		{"matches category", "Financie", 2},
		{"matches tags", "faktúry", 1},
		{"matches owner", "Peter", 1},
		{"no match", "logistika", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindBySubstring(ctx, tt.query)
			if err != nil {
				t.Fatalf("FindBySubstring(%q) error: %v", tt.query, err)
			}
			if len(got) != tt.want {
				t.Errorf("FindBySubstring(%q) returned %d records, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestAggregateCounts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	seed := []Record{
		{Name: "A", Category: "Financie", Owner: "Mária"},
		{Name: "B", Category: "Financie", Owner: "Mária"},
		{Name: "C", Category: "HR", Owner: "Peter"},
		{Name: "D", Category: "", Owner: ""},
	}
	for _, r := range seed {
		if _, err := store.Create(ctx, r); err != nil {
			t.Fatalf("Create(%s) error: %v", r.Name, err)
		}
	}

	counts, err := store.AggregateCounts(ctx)
	if err != nil {
		t.Fatalf("AggregateCounts() error: %v", err)
	}
	if counts.Total != 4 {
		t.Errorf("Total = %d, want 4", counts.Total)
	}
	if len(counts.Categories) != 2 {
		t.Fatalf("Categories = %v, want 2 buckets (empty excluded)", counts.Categories)
	}
	if counts.Categories[0].Name != "Financie" || counts.Categories[0].Count != 2 {
		t.Errorf("top category = %+v, want Financie with 2", counts.Categories[0])
	}
	if len(counts.Owners) != 2 {
		t.Fatalf("Owners = %v, want 2 buckets", counts.Owners)
	}
	if counts.Owners[0].Name != "Mária" {
		t.Errorf("top owner = %q, want Mária", counts.Owners[0].Name)
	}
}

func TestImportRecords(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	records := []Record{
		{Name: "Prvý proces", Category: "Financie"},
		{Name: ""}, // skipped
		{Name: "Druhý proces", Category: "HR"},
	}

	var seen []string
	imported, err := store.ImportRecords(ctx, records, func(done int, name string) {
		seen = append(seen, name)
	})
	if err != nil {
		t.Fatalf("ImportRecords() error: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2 (nameless record skipped)", imported)
	}
	if len(seen) != 2 {
		t.Errorf("progress calls = %d, want 2", len(seen))
	}

	all, err := store.GetActiveProcesses(ctx)
	if err != nil {
		t.Fatalf("GetActiveProcesses() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("stored records = %d, want 2", len(all))
	}
}
