package repositories

import (
	"testing"

	"github.com/overpowerdb/deckvault/deckvault/cards"
)

func TestCatalogRegistryCoversAllTypes(t *testing.T) {
	for _, ct := range cards.AllTypes {
		if _, ok := catalogRegistry[ct]; !ok {
			t.Errorf("card type %q has no catalog registry entry", ct)
		}
	}
	for ct := range catalogRegistry {
		if !ct.Valid() {
			t.Errorf("registry contains tag %q outside the card type vocabulary", ct)
		}
	}
}

func TestCatalogRegistryOnePerDeckFlags(t *testing.T) {
	flagged := map[cards.Type]bool{
		cards.TypePower:            true,
		cards.TypeSpecial:          true,
		cards.TypeAspect:           true,
		cards.TypeTeamwork:         true,
		cards.TypeTraining:         true,
		cards.TypeAdvancedUniverse: true,
	}

	for ct, spec := range catalogRegistry {
		if spec.flagged != flagged[ct] {
			t.Errorf("card type %q one_per_deck flag = %v, want %v", ct, spec.flagged, flagged[ct])
		}
	}
}

func TestCatalogSourceStrings(t *testing.T) {
	src := catalogSource{
		{ID: "1", Name: "Ka-Zar"},
		{ID: "2", Name: "Magneto"},
	}
	if src.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", src.Len())
	}
	if src.String(1) != "Magneto" {
		t.Errorf("String(1) = %q, want %q", src.String(1), "Magneto")
	}
}
