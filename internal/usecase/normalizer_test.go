package usecase

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases plain names",
			input: "Mozzarella",
			want:  "mozzarella",
		},
		{
			name:  "strips romanian diacritics",
			input: "Brânză țărănească",
			want:  "branza taraneasca",
		},
		{
			name:  "strips legacy cedilla forms",
			input: "cireşe şi căpşuni",
			want:  "cirese si capsuni",
		},
		{
			name:  "strips uppercase diacritics",
			input: "ȚELINĂ Și ARDEI",
			want:  "telina si ardei",
		},
		{
			name:  "strips general accents",
			input: "Crème fraîche",
			want:  "creme fraiche",
		},
		{
			name:  "removes percentage tokens",
			input: "Mozzarella 45%",
			want:  "mozzarella",
		},
		{
			name:  "removes decimal percentage tokens",
			input: "Smântână 3.5% grăsime",
			want:  "smantana grasime",
		},
		{
			name:  "removes gram quantities",
			input: "Cașcaval 500g",
			want:  "cascaval",
		},
		{
			name:  "removes spaced kilogram quantities",
			input: "Făină albă 2.5 kg",
			want:  "faina alba",
		},
		{
			name:  "removes milliliter and piece quantities",
			input: "Ulei 750ml, 3 buc",
			want:  "ulei",
		},
		{
			name:  "keeps numbers without a unit",
			input: "Ouă marimea 1",
			want:  "oua marimea 1",
		},
		{
			name:  "strips punctuation",
			input: "Roșii (cherry), proaspete!",
			want:  "rosii cherry proaspete",
		},
		{
			name:  "collapses whitespace runs",
			input: "  piept   de    pui  ",
			want:  "piept de pui",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "all punctuation normalizes to empty",
			input: "***!!!",
			want:  "",
		},
		{
			name:  "quantity-only name normalizes to empty",
			input: "500g",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeName(tc.input)
			if got != tc.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeNameIsDeterministic(t *testing.T) {
	input := "Brânză de vaci 5% 250g"
	first := normalizeName(input)
	for i := 0; i < 10; i++ {
		if got := normalizeName(input); got != first {
			t.Fatalf("normalizeName(%q) changed between calls: %q vs %q", input, first, got)
		}
	}
}
