package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"plan_appetit/internal/config"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingRecipeBackendURL = errors.New("missing RECIPE_BACKEND_URL")

// RecipeClient is a resty-backed implementation of interfaces.IRecipeGenerator.
type RecipeClient struct {
	httpClient *resty.Client
}

var _ interfaces.IRecipeGenerator = (*RecipeClient)(nil)

// NewRecipeClient builds a client for the recipe backend.
func NewRecipeClient(cfg config.RecipeBackendConfig) (*RecipeClient, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrMissingRecipeBackendURL
	}

	restyClient := resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &RecipeClient{httpClient: restyClient}, nil
}

// apiError is the error payload returned by the recipe backend.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Generate asks the backend for a recipe.
func (c *RecipeClient) Generate(ctx context.Context, req entities.RecipeRequest) (entities.Recipe, error) {
	result := new(entities.Recipe)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Post("/recipes/generate")
	if err != nil {
		return entities.Recipe{}, fmt.Errorf("call recipe backend: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return entities.Recipe{}, fmt.Errorf("recipe backend error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return *result, nil
}
