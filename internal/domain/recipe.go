// Package domain defines the core types and interfaces for the recipe
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is the canonical recipe entity. It is created once by the
// materializer and never mutated afterwards; favoriting stores or removes
// the whole value. The JSON tags define the persisted favorites shape.
type Recipe struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	CookingTimeMinutes *int             `json:"cookingTimeMinutes"`
	Calories           *int             `json:"calories"`
	Servings           *int             `json:"servings"`
	MainIngredients    []string         `json:"mainIngredients"`
	Ingredients        []IngredientItem `json:"ingredients"`
	Instructions       []string         `json:"instructions"`
	Nutrition          *NutritionInfo   `json:"nutrition,omitempty"`
	Tips               *string          `json:"tips,omitempty"`
}

// IngredientItem is a single ingredient with a free-form quantity
// ("200g", "1/2 head", "a pinch").
type IngredientItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// NutritionInfo holds estimated per-serving macros as descriptive strings
// ("35g"). Absent fields mean the model didn't estimate them.
type NutritionInfo struct {
	Protein *string `json:"protein,omitempty"`
	Fat     *string `json:"fat,omitempty"`
	Carbs   *string `json:"carbs,omitempty"`
}

// RecipeDraft is a recipe as returned by the generation service, before
// identity assignment and defaulting. Nil numeric fields mean unknown,
// never zero.
type RecipeDraft struct {
	Name               string
	Description        string
	CookingTimeMinutes *int
	Calories           *int
	Servings           *int
	MainIngredients    []string
	Ingredients        []IngredientItem
	Instructions       []string
	Nutrition          *NutritionInfo
	Tips               *string
}
