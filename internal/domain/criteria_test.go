package domain

import "testing"

func TestCriteriaNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Criteria
		want int
	}{
		{"zero clamps to min", Criteria{Servings: 0}, MinServings},
		{"negative clamps to min", Criteria{Servings: -5}, MinServings},
		{"huge clamps to max", Criteria{Servings: 999}, MaxServings},
		{"min stays", Criteria{Servings: MinServings}, MinServings},
		{"max stays", Criteria{Servings: MaxServings}, MaxServings},
		{"in range stays", Criteria{Servings: 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Servings != tt.want {
				t.Fatalf("Servings = %d, want %d", got.Servings, tt.want)
			}
			// Idempotent.
			if again := got.Normalized(); again != got {
				t.Fatalf("not idempotent: %+v vs %+v", again, got)
			}
		})
	}
}

func TestCriteriaNormalizedFoldsUnknownEnums(t *testing.T) {
	c := Criteria{MealType: MealType(99), CookingTime: CookingTime(-1), Servings: 2}.Normalized()
	if c.MealType != MealAny {
		t.Fatalf("expected MealAny, got %v", c.MealType)
	}
	if c.CookingTime != TimeAny {
		t.Fatalf("expected TimeAny, got %v", c.CookingTime)
	}
}

func TestNewCriteriaDefaultServings(t *testing.T) {
	c := NewCriteria(MealDinner, TimeUnder30)
	if c.Servings != DefaultServings {
		t.Fatalf("expected default servings %d, got %d", DefaultServings, c.Servings)
	}
}

func TestEnumLabelsAreTotal(t *testing.T) {
	for _, m := range MealTypes() {
		if m.Label() == "" || m.String() == "" {
			t.Fatalf("meal type %d has empty mapping", m)
		}
	}
	for _, c := range CookingTimes() {
		if c.Label() == "" || c.String() == "" {
			t.Fatalf("cooking time %d has empty mapping", c)
		}
	}
}
