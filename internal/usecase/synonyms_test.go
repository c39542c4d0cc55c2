package usecase

import "testing"

func TestSynonymsOf(t *testing.T) {
	t.Run("returns full group for a member", func(t *testing.T) {
		synonyms := synonymsOf("cascaval")
		found := false
		for _, s := range synonyms {
			if s == "branza tare" {
				found = true
			}
		}
		if !found {
			t.Errorf("synonymsOf(\"cascaval\") = %v, want to include \"branza tare\"", synonyms)
		}
	})

	t.Run("returns full group for a non-canonical member", func(t *testing.T) {
		synonyms := synonymsOf("tomate")
		found := false
		for _, s := range synonyms {
			if s == "rosii" {
				found = true
			}
		}
		if !found {
			t.Errorf("synonymsOf(\"tomate\") = %v, want to include \"rosii\"", synonyms)
		}
	})

	t.Run("unknown name is a synonym of itself", func(t *testing.T) {
		synonyms := synonymsOf("fruct exotic")
		if len(synonyms) != 1 || synonyms[0] != "fruct exotic" {
			t.Errorf("synonymsOf(\"fruct exotic\") = %v, want [fruct exotic]", synonyms)
		}
	})

	t.Run("all group members are stored normalized", func(t *testing.T) {
		for _, group := range synonymGroups {
			for _, member := range group {
				if normalized := normalizeName(member); normalized != member {
					t.Errorf("group member %q is not normalized (normalizes to %q)", member, normalized)
				}
			}
		}
	})

	t.Run("every member resolves to its own group", func(t *testing.T) {
		for _, group := range synonymGroups {
			for _, member := range group {
				synonyms := synonymsOf(member)
				if len(synonyms) != len(group) {
					t.Errorf("synonymsOf(%q) returned %d members, want %d", member, len(synonyms), len(group))
				}
			}
		}
	})
}

func TestSynonymSetsIntersect(t *testing.T) {
	t.Run("shared member intersects", func(t *testing.T) {
		if !synonymSetsIntersect([]string{"rosii", "tomate"}, []string{"tomate"}) {
			t.Error("expected intersection on shared member")
		}
	})

	t.Run("disjoint sets do not intersect", func(t *testing.T) {
		if synonymSetsIntersect([]string{"rosii"}, []string{"cartofi"}) {
			t.Error("expected no intersection")
		}
	})
}
