package fold

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Faktúra", "faktura"},
		{"Fakturácia dodávateľom", "fakturacia dodavatelom"},
		{"schvaľuje", "schvaluje"},
		{"MANAŽÉR", "manazer"},
		{"systém, ktorý", "system, ktory"},
		{"ďateľ ôsmy ĺž", "datel osmy lz"},
		{"no accents", "no accents"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := String(tt.in); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldingPreservesLength(t *testing.T) {
	// Index arithmetic on folded text relies on 1:1 rune mapping.
	inputs := []string{"Fakturácia dodávateľom", "ľĺŕňďťž", "plain"}
	for _, in := range inputs {
		orig := []rune(in)
		folded := Runes([]rune(in))
		if len(folded) != len(orig) {
			t.Errorf("Runes(%q) changed length from %d to %d", in, len(orig), len(folded))
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Fakturácia dodávateľom", "faktúra") {
		t.Error("expected faktúra to match Fakturácia after folding")
	}
	if Contains("Nábor zamestnancov", "faktúra") {
		t.Error("unexpected match")
	}
}
