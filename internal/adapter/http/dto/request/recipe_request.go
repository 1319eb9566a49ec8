package request

import "plan_appetit/internal/domain/entities"

type RecipeRequest struct {
	Dish        string   `json:"dish" binding:"required"`
	Covers      int      `json:"covers" binding:"required,gt=0"`
	Constraints []string `json:"constraints"`
}

func (r RecipeRequest) ToEntity() entities.RecipeRequest {
	return entities.RecipeRequest{Dish: r.Dish, Covers: r.Covers, Constraints: r.Constraints}
}
