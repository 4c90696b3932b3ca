package services

import (
	"testing"
)

func entry(title string, calories, carbs, protein, fat float64) DiaryEntry {
	return DiaryEntry{
		MealType: "Lunch",
		Title:    title,
		Calories: calories,
		CarbsG:   carbs,
		ProteinG: protein,
		FatG:     fat,
	}
}

func TestAddEntry_AppendsInOrder(t *testing.T) {
	log := NewDiaryLog()
	log.AddEntry(entry("A", 100, 10, 5, 2))
	log.AddEntry(entry("B", 200, 20, 10, 4))
	log.AddEntry(entry("A", 100, 10, 5, 2)) // duplicates allowed

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Title != "A" || entries[1].Title != "B" || entries[2].Title != "A" {
		t.Errorf("unexpected order: %v, %v, %v", entries[0].Title, entries[1].Title, entries[2].Title)
	}
	if entries[0].ID == entries[2].ID {
		t.Error("expected distinct IDs for duplicate titles")
	}
}

// Removing an entry must not disturb the eaten flags of the entries that
// remain: log=[A,B,C] with A,B checked; removing B leaves A checked and
// C (never checked) unchecked.
func TestRemoveEntry_PreservesUnrelatedCheckedFlags(t *testing.T) {
	log := NewDiaryLog()
	log.AddEntry(entry("A", 100, 10, 5, 2))
	log.AddEntry(entry("B", 200, 20, 10, 4))
	log.AddEntry(entry("C", 300, 30, 15, 6))
	log.SetChecked(0, true)
	log.SetChecked(1, true)

	if !log.RemoveEntry(1) {
		t.Fatal("RemoveEntry(1) failed")
	}

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "A" || !entries[0].Checked {
		t.Errorf("entry 0: got (%s, checked=%v), want (A, true)", entries[0].Title, entries[0].Checked)
	}
	if entries[1].Title != "C" || entries[1].Checked {
		t.Errorf("entry 1: got (%s, checked=%v), want (C, false)", entries[1].Title, entries[1].Checked)
	}

	// totals after removal equal totals of the original pair minus B
	got := log.ComputeTotals()
	want := DiaryTotals{Calories: 100, CarbsG: 10, ProteinG: 5, FatG: 2}
	if got != want {
		t.Errorf("totals after removal = %+v, want %+v", got, want)
	}
}

func TestRemoveEntry_OutOfRange(t *testing.T) {
	log := NewDiaryLog()
	log.AddEntry(entry("A", 100, 10, 5, 2))
	if log.RemoveEntry(-1) || log.RemoveEntry(1) {
		t.Error("expected out-of-range removal to report false")
	}
	if len(log.Entries()) != 1 {
		t.Error("out-of-range removal must not change the log")
	}
}

func TestSetChecked_Idempotent(t *testing.T) {
	log := NewDiaryLog()
	log.AddEntry(entry("A", 100, 10, 5, 2))

	log.SetChecked(0, true)
	log.SetChecked(0, true)
	if got := log.ComputeTotals().Calories; got != 100 {
		t.Errorf("calories = %v, want 100", got)
	}

	log.SetChecked(0, false)
	if got := log.ComputeTotals().Calories; got != 0 {
		t.Errorf("calories after uncheck = %v, want 0", got)
	}
}

func TestComputeTotals_OnlyCheckedEntriesCount(t *testing.T) {
	log := NewDiaryLog()
	log.AddEntry(entry("A", 100, 10, 5, 2))
	log.AddEntry(entry("B", 200, 20, 10, 4))
	log.SetChecked(1, true)

	got := log.ComputeTotals()
	want := DiaryTotals{Calories: 200, CarbsG: 20, ProteinG: 10, FatG: 4}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestComputeMacroPercentages(t *testing.T) {
	// 50g carbs (200 kcal), 25g protein (100 kcal), 11.11...g fat (100 kcal)
	got := ComputeMacroPercentages(DiaryTotals{CarbsG: 50, ProteinG: 25, FatG: 100.0 / 9})
	if got.CarbsPct != 50 || got.ProteinPct != 25 || got.FatPct != 25 {
		t.Errorf("percentages = %+v, want {50 25 25}", got)
	}
}

func TestComputeMacroPercentages_ZeroDenominator(t *testing.T) {
	got := ComputeMacroPercentages(DiaryTotals{})
	if got != (MacroPercentages{}) {
		t.Errorf("percentages = %+v, want all zeros", got)
	}
}

// Each percentage rounds independently, so the three need not sum to 100.
func TestComputeMacroPercentages_IndependentRounding(t *testing.T) {
	got := ComputeMacroPercentages(DiaryTotals{CarbsG: 1, ProteinG: 1, FatG: 1})
	sum := got.CarbsPct + got.ProteinPct + got.FatPct
	if sum < 98 || sum > 102 {
		t.Errorf("percentage sum = %d, expected near 100", sum)
	}
}

func TestRemainingCalories_NotClamped(t *testing.T) {
	if got := RemainingCalories(2000, DiaryTotals{Calories: 1500}); got != 500 {
		t.Errorf("remaining = %d, want 500", got)
	}
	if got := RemainingCalories(2000, DiaryTotals{Calories: 2600}); got != -600 {
		t.Errorf("remaining over target = %d, want -600", got)
	}
}

func TestDiaryStore_LogPerUser(t *testing.T) {
	store := NewDiaryStore()
	store.Log(1).AddEntry(entry("A", 100, 10, 5, 2))

	if n := len(store.Log(2).Entries()); n != 0 {
		t.Errorf("user 2 log has %d entries, want 0", n)
	}
	if n := len(store.Log(1).Entries()); n != 1 {
		t.Errorf("user 1 log has %d entries, want 1", n)
	}
}
