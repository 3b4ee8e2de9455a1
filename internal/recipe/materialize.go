// Package recipe turns generation drafts into canonical recipe entities.
package recipe

import (
	"github.com/google/uuid"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// Fallback text for structurally required fields the service omitted.
const (
	FallbackName        = "unnamed recipe"
	FallbackDescription = "no description"
)

// Materialize assigns identity to a draft and fills required fields with
// safe defaults. Identity is a random UUID; recipes from different
// searches must never collide while favorites persist across searches.
// Fallbacks apply per field; a draft can never fail to materialize.
func Materialize(draft domain.RecipeDraft) domain.Recipe {
	r := domain.Recipe{
		ID:                 uuid.NewString(),
		Name:               draft.Name,
		Description:        draft.Description,
		CookingTimeMinutes: draft.CookingTimeMinutes,
		Calories:           draft.Calories,
		Servings:           draft.Servings,
		MainIngredients:    draft.MainIngredients,
		Ingredients:        draft.Ingredients,
		Instructions:       draft.Instructions,
		Nutrition:          draft.Nutrition,
		Tips:               draft.Tips,
	}

	if r.Name == "" {
		r.Name = FallbackName
	}
	if r.Description == "" {
		r.Description = FallbackDescription
	}

	// Missing collections become empty, not nil, so the persisted JSON
	// stays [] rather than null.
	if r.MainIngredients == nil {
		r.MainIngredients = []string{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []domain.IngredientItem{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	return r
}

// MaterializeAll materializes a batch in order.
func MaterializeAll(drafts []domain.RecipeDraft) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, Materialize(d))
	}
	return out
}
