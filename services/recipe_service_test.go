package services

import "testing"

func TestFlagAllergens(t *testing.T) {
	ingredients := []string{"2 cups peanut butter", "1 banana", "200g shrimp"}

	got := flagAllergens(ingredients, []string{"Peanut", "shellfish", "egg"})
	if len(got) != 1 || got[0] != "Peanut" {
		t.Errorf("flagged = %v, want [Peanut]", got)
	}

	if got := flagAllergens(ingredients, nil); got != nil {
		t.Errorf("no allergies must flag nothing, got %v", got)
	}

	if got := flagAllergens(nil, []string{"peanut"}); got != nil {
		t.Errorf("no ingredients must flag nothing, got %v", got)
	}
}
