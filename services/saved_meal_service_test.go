package services

import (
	"testing"

	"github.com/aarusa/your-ai-meal-sub000/models"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.MealStatusGenerated, models.MealStatusAccepted, true},
		{models.MealStatusGenerated, models.MealStatusRejected, true},
		{models.MealStatusGenerated, models.MealStatusCooked, false},
		{models.MealStatusAccepted, models.MealStatusCooked, true},
		{models.MealStatusAccepted, models.MealStatusRejected, false},
		{models.MealStatusRejected, models.MealStatusAccepted, false},
		{models.MealStatusCooked, models.MealStatusGenerated, false},
		{models.MealStatusGenerated, "bogus", false},
		{"", models.MealStatusAccepted, false},
	}
	for _, tc := range cases {
		if got := ValidStatusTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
