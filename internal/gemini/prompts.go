package gemini

import (
	"fmt"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// The prompt lives here so wording changes are a single-file edit.
// Keep it concise; every token costs money and latency.

// desiredCount is the fixed number of recipes requested per search.
const desiredCount = 3

// promptTemplate asks for strict JSON matching the recipes envelope. The
// example recipe doubles as the schema the model is told to follow.
const promptTemplate = `You are an experienced chef and a smart recipe suggestion assistant.
Suggest %d creative, delicious recipes that are easy to make at home and match the conditions below.

The output MUST be JSON following this exact structure:
` + "```json" + `
{
  "recipes": [
    {
      "name": "Dish name (e.g. Herb-Grilled Chicken with Roasted Vegetables)",
      "description": "A catchy one-liner (e.g. Healthy and satisfying; the herb aroma makes it irresistible.)",
      "cookingTimeMinutes": 30,
      "calories": 450,
      "servings": 2,
      "mainIngredients": ["chicken breast", "bell pepper", "zucchini"],
      "ingredients": [
        {"name": "chicken breast", "quantity": "200g"},
        {"name": "bell pepper (red and yellow)", "quantity": "1/2 each"},
        {"name": "zucchini", "quantity": "1/2"},
        {"name": "olive oil", "quantity": "1 tbsp"},
        {"name": "dried mixed herbs (oregano, basil)", "quantity": "1 tsp"},
        {"name": "salt", "quantity": "to taste"},
        {"name": "black pepper", "quantity": "to taste"}
      ],
      "instructions": [
        "Cut the chicken into bite-sized pieces and rub with salt, pepper, and the herb mix.",
        "Roughly chop the bell pepper and zucchini.",
        "Heat the olive oil in a pan and cook the chicken over medium heat. Once browned, add the vegetables and stir-fry.",
        "Cook until everything is done. Serve."
      ],
      "nutrition": {
        "protein": "35g",
        "fat": "15g",
        "carbs": "20g"
      },
      "tips": "A squeeze of lemon keeps it fresh. Swap in any vegetables you like."
    }
  ]
}
` + "```" + `

The user's conditions:
- Meal type: %s
- Cooking time: %s
- Servings: %d

Notes:
- Each recipe must be unique; aim for variety across the three.
- Ingredient lists must include concrete quantities scaled to the serving count.
- Instructions must be concrete, step by step.
- Nutrition values may be estimates. Use null or omit the field when unknown.
- Suggest exactly %d recipes.`

// buildPrompt renders the generation prompt for the given criteria.
func buildPrompt(criteria domain.Criteria) string {
	return fmt.Sprintf(promptTemplate,
		desiredCount,
		criteria.MealType.Label(),
		criteria.CookingTime.Label(),
		criteria.Servings,
		desiredCount,
	)
}
