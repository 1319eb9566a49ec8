package interfaces

import (
	"context"
	"plan_appetit/internal/domain/entities"
)

// IRecipeGenerator abstracts the external AI recipe backend.
//
// Calls are opaque request/response exchanges that may fail or time out.
type IRecipeGenerator interface {
	Generate(ctx context.Context, req entities.RecipeRequest) (entities.Recipe, error)
}
