package response

import "plan_appetit/internal/domain/entities"

type RecipeResponse struct {
	Title       string   `json:"title"`
	Servings    int      `json:"servings"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

func FromRecipe(r entities.Recipe) RecipeResponse {
	return RecipeResponse{
		Title:       r.Title,
		Servings:    r.Servings,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
	}
}
