package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// The service is untrusted output; every structural assumption the rest
// of the system makes about a Recipe is defended here, once.

// fenceRE matches a whole payload wrapped in a markdown code fence,
// optionally tagged with a language hint. Group 2 is the inner text.
var fenceRE = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// stripFence removes a surrounding markdown fence, if any.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRE.FindStringSubmatch(s); m != nil && m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return s
}

// envelope is the top-level response object. Recipes stays raw so a
// missing field and a wrong-typed field produce distinct diagnostics.
type envelope struct {
	Recipes json.RawMessage `json:"recipes"`
}

// draftWire is the per-recipe wire shape. The repeated-collection fields
// stay raw so non-array values can be coerced to empty instead of
// poisoning downstream code; everything else decodes strictly.
type draftWire struct {
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	CookingTimeMinutes *int                 `json:"cookingTimeMinutes"`
	Calories           *int                 `json:"calories"`
	Servings           json.RawMessage      `json:"servings"`
	MainIngredients    json.RawMessage      `json:"mainIngredients"`
	Ingredients        json.RawMessage      `json:"ingredients"`
	Instructions       json.RawMessage      `json:"instructions"`
	Nutrition          *domain.NutritionInfo `json:"nutrition"`
	Tips               *string              `json:"tips"`
}

// parseDrafts turns the raw model reply into recipe drafts. Any
// structural failure returns a *domain.GenerationError carrying the raw
// payload; never a partially parsed list.
func parseDrafts(raw string, fallbackServings int) ([]domain.RecipeDraft, error) {
	jsonStr := stripFence(raw)

	var env envelope
	if err := json.Unmarshal([]byte(jsonStr), &env); err != nil {
		return nil, &domain.GenerationError{
			Kind:    domain.GenerationMalformed,
			Message: "reply is not valid JSON",
			Raw:     raw,
			Err:     err,
		}
	}
	if env.Recipes == nil {
		return nil, &domain.GenerationError{
			Kind:    domain.GenerationSchema,
			Message: `reply has no "recipes" field`,
			Raw:     raw,
		}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(env.Recipes, &items); err != nil {
		return nil, &domain.GenerationError{
			Kind:    domain.GenerationSchema,
			Message: `"recipes" is not an array`,
			Raw:     raw,
			Err:     err,
		}
	}

	drafts := make([]domain.RecipeDraft, 0, len(items))
	for i, item := range items {
		draft, err := parseDraft(item, fallbackServings)
		if err != nil {
			return nil, &domain.GenerationError{
				Kind:    domain.GenerationSchema,
				Message: fmt.Sprintf("recipe %d does not match the schema", i+1),
				Raw:     raw,
				Err:     err,
			}
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// parseDraft decodes a single recipe object and applies the defensive
// normalization: non-array collections become empty, a non-numeric
// servings falls back to the requested count, and ingredient entries
// missing either field are dropped.
func parseDraft(item json.RawMessage, fallbackServings int) (domain.RecipeDraft, error) {
	var w draftWire
	if err := json.Unmarshal(item, &w); err != nil {
		return domain.RecipeDraft{}, err
	}

	servings := fallbackServings
	if w.Servings != nil {
		var n int
		if err := json.Unmarshal(w.Servings, &n); err == nil {
			servings = n
		}
	}

	draft := domain.RecipeDraft{
		Name:               w.Name,
		Description:        w.Description,
		CookingTimeMinutes: w.CookingTimeMinutes,
		Calories:           w.Calories,
		Servings:           &servings,
		MainIngredients:    stringsOrEmpty(w.MainIngredients),
		Ingredients:        ingredientsOrEmpty(w.Ingredients),
		Instructions:       stringsOrEmpty(w.Instructions),
		Nutrition:          w.Nutrition,
		Tips:               w.Tips,
	}
	return draft, nil
}

func stringsOrEmpty(raw json.RawMessage) []string {
	var out []string
	if raw != nil {
		if err := json.Unmarshal(raw, &out); err != nil {
			out = nil
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func ingredientsOrEmpty(raw json.RawMessage) []domain.IngredientItem {
	var decoded []domain.IngredientItem
	if raw != nil {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = nil
		}
	}
	out := make([]domain.IngredientItem, 0, len(decoded))
	for _, item := range decoded {
		if item.Name == "" || item.Quantity == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
