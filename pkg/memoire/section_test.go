package memoire

import "testing"

func TestOrderCoversAllSections(t *testing.T) {
	if len(Order) != 9 {
		t.Fatalf("expected 9 sections in the outline, got %d", len(Order))
	}
	if Order[0] != SectionIntroduction {
		t.Errorf("outline must start with the introduction, got %s", Order[0])
	}
	if Order[len(Order)-1] != SectionConclusion {
		t.Errorf("outline must end with the conclusion, got %s", Order[len(Order)-1])
	}
}

func TestNextFollowsOutline(t *testing.T) {
	for i, section := range Order[:len(Order)-1] {
		next, ok := Next(section)
		if !ok {
			t.Fatalf("Next(%s) reported no successor", section)
		}
		if next != Order[i+1] {
			t.Errorf("Next(%s) = %s, want %s", section, next, Order[i+1])
		}
	}
}

func TestNextStopsAtConclusion(t *testing.T) {
	if next, ok := Next(SectionConclusion); ok {
		t.Errorf("Next(conclusion) = %s, want no successor", next)
	}
	if _, ok := Next(SectionID("inconnue")); ok {
		t.Error("Next on an unknown section must report no successor")
	}
}

func TestLabelAndDescription(t *testing.T) {
	for _, section := range Order {
		if Label(section) == "" {
			t.Errorf("missing label for %s", section)
		}
		if Description(section) == "" {
			t.Errorf("missing description for %s", section)
		}
	}
	// unknown sections fall back to the raw identifier
	if got := Label(SectionID("inconnue")); got != "inconnue" {
		t.Errorf("Label fallback = %q, want raw id", got)
	}
}
