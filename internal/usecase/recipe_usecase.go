package usecase

import (
	"context"
	"errors"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidRecipeRequest       = errors.New("invalid recipe request")
	ErrRecipeBackendNotConfigured = errors.New("recipe backend not configured")
)

// IRecipeUseCase forwards recipe generation to the external backend.

type IRecipeUseCase interface {
	Generate(ctx context.Context, req entities.RecipeRequest) (entities.Recipe, error)
}

type RecipeUseCase struct {
	generator interfaces.IRecipeGenerator
	logger    *zap.Logger
}

var _ IRecipeUseCase = (*RecipeUseCase)(nil)

// NewRecipeUseCase accepts a nil generator; Generate then reports
// ErrRecipeBackendNotConfigured.
func NewRecipeUseCase(generator interfaces.IRecipeGenerator, logger *zap.Logger) *RecipeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeUseCase{generator: generator, logger: logger}
}

func (u *RecipeUseCase) Generate(ctx context.Context, req entities.RecipeRequest) (entities.Recipe, error) {
	req.Dish = strings.TrimSpace(req.Dish)
	if req.Dish == "" || req.Covers <= 0 {
		return entities.Recipe{}, ErrInvalidRecipeRequest
	}
	if u.generator == nil {
		return entities.Recipe{}, ErrRecipeBackendNotConfigured
	}

	var constraints []string
	for _, c := range req.Constraints {
		if c = strings.TrimSpace(c); c != "" {
			constraints = append(constraints, c)
		}
	}
	req.Constraints = constraints

	recipe, err := u.generator.Generate(ctx, req)
	if err != nil {
		u.logger.Error("recipe generation failed", zap.String("dish", req.Dish), zap.Error(err))
		return entities.Recipe{}, err
	}

	u.logger.Info("recipe generated", zap.String("dish", req.Dish), zap.Int("covers", req.Covers))
	return recipe, nil
}
