package recipe

import (
	"testing"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

func TestMaterializeFallbacks(t *testing.T) {
	r := Materialize(domain.RecipeDraft{})

	if r.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if r.Name != FallbackName {
		t.Fatalf("expected fallback name, got %q", r.Name)
	}
	if r.Description != FallbackDescription {
		t.Fatalf("expected fallback description, got %q", r.Description)
	}
	if r.CookingTimeMinutes != nil || r.Calories != nil {
		t.Fatal("missing numeric fields must stay nil, not zero")
	}
	if r.MainIngredients == nil || r.Ingredients == nil || r.Instructions == nil {
		t.Fatal("missing collections must become empty slices, not nil")
	}
	if len(r.Ingredients) != 0 {
		t.Fatalf("expected empty ingredients, got %v", r.Ingredients)
	}
	if r.Nutrition != nil || r.Tips != nil {
		t.Fatal("missing optional fields must stay nil")
	}
}

func TestMaterializeKeepsDraftValues(t *testing.T) {
	mins, cal, servings := 25, 300, 2
	tips := "serve warm"
	draft := domain.RecipeDraft{
		Name:               "Miso Soup",
		Description:        "A classic.",
		CookingTimeMinutes: &mins,
		Calories:           &cal,
		Servings:           &servings,
		MainIngredients:    []string{"tofu", "wakame"},
		Ingredients:        []domain.IngredientItem{{Name: "tofu", Quantity: "100g"}},
		Instructions:       []string{"Simmer."},
		Nutrition:          &domain.NutritionInfo{},
		Tips:               &tips,
	}

	r := Materialize(draft)
	if r.Name != "Miso Soup" || r.Description != "A classic." {
		t.Fatalf("draft values not preserved: %+v", r)
	}
	if *r.CookingTimeMinutes != 25 || *r.Calories != 300 || *r.Servings != 2 {
		t.Fatal("numeric values not preserved")
	}
	if len(r.MainIngredients) != 2 || len(r.Ingredients) != 1 || len(r.Instructions) != 1 {
		t.Fatal("collections not preserved")
	}
}

func TestMaterializeUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := Materialize(domain.RecipeDraft{Name: "same draft"})
		if seen[r.ID] {
			t.Fatalf("duplicate ID after %d materializations", i)
		}
		seen[r.ID] = true
	}
}

func TestMaterializeAllPreservesOrder(t *testing.T) {
	drafts := []domain.RecipeDraft{
		{Name: "first"}, {Name: "second"}, {Name: "third"},
	}
	recipes := MaterializeAll(drafts)
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}
	for i, want := range []string{"first", "second", "third"} {
		if recipes[i].Name != want {
			t.Fatalf("order not preserved at %d: %q", i, recipes[i].Name)
		}
	}
}
