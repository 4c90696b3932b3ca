package utils

import (
	"testing"
	"time"
)

func TestAgeFromBirthDate_AnniversaryBoundary(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	dayBefore := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	if age, ok := AgeFromBirthDate(dob, dayBefore); !ok || age != 23 {
		t.Errorf("day before anniversary: got (%d, %v), want (23, true)", age, ok)
	}

	onDay := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if age, ok := AgeFromBirthDate(dob, onDay); !ok || age != 24 {
		t.Errorf("on anniversary: got (%d, %v), want (24, true)", age, ok)
	}
}

func TestAgeFromBirthDate_Missing(t *testing.T) {
	if _, ok := AgeFromBirthDate(time.Time{}, time.Now()); ok {
		t.Error("expected ok=false for zero birthday")
	}
}

func TestActivityMultiplier(t *testing.T) {
	cases := []struct {
		label string
		want  float64
	}{
		{"Very Active", 1.725},
		{"super-active", 1.9},
		{"", 1.2},
		{"Moderately Active", 1.55}, // must match "moderate" before falling through
		{"lightly active", 1.375},
		{"sedentary", 1.2},
		{"couch potato", 1.2}, // unknown label falls back to sedentary
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := ActivityMultiplier(tc.label); got != tc.want {
				t.Errorf("ActivityMultiplier(%q) = %v, want %v", tc.label, got, tc.want)
			}
		})
	}
}

// The male/default sex offset (+5) and female offset (-161) differ by 166,
// for any identical weight/height/age.
func TestBMR_SexOffsetDelta(t *testing.T) {
	cases := []struct {
		weight, height float64
		age            int
	}{
		{70, 175, 30},
		{55, 160, 45},
		{95, 190, 22},
	}
	for _, tc := range cases {
		male, ok := BMR("male", tc.weight, tc.height, tc.age)
		if !ok {
			t.Fatalf("male BMR not ok for %+v", tc)
		}
		female, ok := BMR("Female", tc.weight, tc.height, tc.age)
		if !ok {
			t.Fatalf("female BMR not ok for %+v", tc)
		}
		if male != female+166 {
			t.Errorf("male=%d female=%d, want male = female+166", male, female)
		}
	}
}

func TestBMR_DefaultsToMaleOffset(t *testing.T) {
	unspecified, _ := BMR("", 70, 175, 30)
	male, _ := BMR("male", 70, 175, 30)
	other, _ := BMR("other", 70, 175, 30)
	if unspecified != male || other != male {
		t.Errorf("unspecified=%d other=%d male=%d, want all equal", unspecified, other, male)
	}
}

func TestBMR_MissingInputs(t *testing.T) {
	cases := []struct {
		name           string
		weight, height float64
		age            int
	}{
		{"zero weight", 0, 175, 30},
		{"zero height", 70, 0, 30},
		{"zero age", 70, 175, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := BMR("male", tc.weight, tc.height, tc.age); ok {
				t.Error("expected ok=false")
			}
		})
	}
}

// End-to-end known values: 70kg, 175cm, 30y male, moderate activity.
// BMR = round(700 + 1093.75 - 150 + 5) = 1649; TDEE = round(1649*1.55) = 2556.
func TestTDEE_KnownValues(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := EnergyProfile{
		Gender:        "male",
		WeightKg:      70,
		HeightCm:      175,
		Birthday:      time.Date(1994, 1, 15, 0, 0, 0, 0, time.UTC), // 30 years old
		ActivityLevel: "moderate",
	}
	got, ok := TDEE(p, now)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != 2556 {
		t.Errorf("TDEE = %d, want 2556", got)
	}
}

func TestTDEE_IncompleteProfile(t *testing.T) {
	now := time.Now()
	p := EnergyProfile{Gender: "male", HeightCm: 175, ActivityLevel: "moderate"}
	if _, ok := TDEE(p, now); ok {
		t.Error("expected ok=false without weight and birthday")
	}
}
