package services

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DiaryEntry is a single food item shown in the daily diary. Checked marks
// the entry as eaten; only checked entries count toward the day's totals.
// The flag lives on the entry itself, keyed by identity, so removing an
// entry can never shift another entry's eaten state.
type DiaryEntry struct {
	ID       string    `json:"id"`
	MealType string    `json:"meal_type"` // Breakfast | Lunch | Snack | Dinner
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url,omitempty"`
	Calories float64   `json:"calories"`
	CarbsG   float64   `json:"carbs_g"`
	ProteinG float64   `json:"protein_g"`
	FatG     float64   `json:"fat_g"`
	Checked  bool      `json:"checked"`
	AddedAt  time.Time `json:"added_at"`
}

// DiaryTotals aggregates the checked subset of a log.
type DiaryTotals struct {
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
}

// MacroPercentages is the energy contribution split of the totals.
// The three values are rounded independently and need not sum to 100.
type MacroPercentages struct {
	CarbsPct   int `json:"carbs_pct"`
	ProteinPct int `json:"protein_pct"`
	FatPct     int `json:"fat_pct"`
}

// DiaryLog is one viewing session's ordered meal log.
type DiaryLog struct {
	mu      sync.Mutex
	entries []DiaryEntry
}

func NewDiaryLog() *DiaryLog {
	return &DiaryLog{}
}

// AddEntry appends to the end of the log. No dedup, no sorting.
func (d *DiaryLog) AddEntry(e DiaryEntry) DiaryEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now()
	}
	d.entries = append(d.entries, e)
	return e
}

// RemoveEntry deletes the entry at index. Checked flags travel with their
// entries, so flags on the remaining entries are untouched. Out-of-range
// indexes are a no-op returning false.
func (d *DiaryLog) RemoveEntry(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.entries) {
		return false
	}
	d.entries = append(d.entries[:index], d.entries[index+1:]...)
	return true
}

// SetChecked idempotently sets or clears the eaten flag at index.
func (d *DiaryLog) SetChecked(index int, value bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.entries) {
		return false
	}
	d.entries[index].Checked = value
	return true
}

// Entries returns a copy of the ordered log.
func (d *DiaryLog) Entries() []DiaryEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DiaryEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// ComputeTotals sums calories and macro grams over checked entries only.
// Recomputed fresh on every call from the full log, never accumulated.
func (d *DiaryLog) ComputeTotals() DiaryTotals {
	d.mu.Lock()
	defer d.mu.Unlock()
	var t DiaryTotals
	for _, e := range d.entries {
		if !e.Checked {
			continue
		}
		t.Calories += e.Calories
		t.CarbsG += e.CarbsG
		t.ProteinG += e.ProteinG
		t.FatG += e.FatG
	}
	return t
}

// ComputeMacroPercentages converts gram totals to energy shares using
// 4 kcal/g for carbs and protein and 9 kcal/g for fat. A zero denominator
// yields all-zero percentages rather than NaN.
func ComputeMacroPercentages(t DiaryTotals) MacroPercentages {
	carbsKcal := t.CarbsG * 4
	proteinKcal := t.ProteinG * 4
	fatKcal := t.FatG * 9
	total := carbsKcal + proteinKcal + fatKcal
	if total == 0 {
		return MacroPercentages{}
	}
	return MacroPercentages{
		CarbsPct:   int(math.Round(carbsKcal / total * 100)),
		ProteinPct: int(math.Round(proteinKcal / total * 100)),
		FatPct:     int(math.Round(fatKcal / total * 100)),
	}
}

// RemainingCalories is target minus consumed. Negative when over target;
// never clamped.
func RemainingCalories(target int, t DiaryTotals) int {
	return target - int(math.Round(t.Calories))
}

// DiaryStore holds one DiaryLog per user for the lifetime of the process.
type DiaryStore struct {
	mu   sync.RWMutex
	logs map[uint]*DiaryLog
}

func NewDiaryStore() *DiaryStore {
	return &DiaryStore{logs: make(map[uint]*DiaryLog)}
}

// Log returns the user's diary log, creating it on first access.
func (s *DiaryStore) Log(userID uint) *DiaryLog {
	s.mu.RLock()
	l := s.logs[userID]
	s.mu.RUnlock()
	if l != nil {
		return l
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l = s.logs[userID]; l == nil {
		l = NewDiaryLog()
		s.logs[userID] = l
	}
	return l
}
