package entities

// RecipeRequest is what the client asks the recipe backend to generate.
type RecipeRequest struct {
	Dish        string   `json:"dish"`
	Covers      int      `json:"covers"`
	Constraints []string `json:"constraints,omitempty"`
}

// Recipe is the backend's answer, passed through to the client untouched.
type Recipe struct {
	Title       string   `json:"title"`
	Servings    int      `json:"servings"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
