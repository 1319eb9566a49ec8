package response

import (
	"testing"

	"plan_appetit/internal/domain/entities"
)

func TestFromConfiguration(t *testing.T) {
	c := entities.NewEmptyConfiguration("cfg-1")
	c.Name = "Terrasse"
	c.Stats.WorkedWeeks = 40
	c.Week.Days[0].Evening = entities.Meal{Covers: 3, DessertPrice: 6}

	res := FromConfiguration(c)
	if res.UUID != "cfg-1" || res.Name != "Terrasse" || res.Stats.WorkedWeeks != 40 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Week.Days) != entities.DaysPerWeek || res.Week.Days[0].Name != "Lundi" {
		t.Fatalf("unexpected days: %+v", res.Week.Days)
	}
	if len(res.Week.Days[0].Meals) != entities.MealsPerDay {
		t.Fatalf("expected two meals, got %d", len(res.Week.Days[0].Meals))
	}
	if got := res.Week.Days[0].Meals[1]; got.Covers != 3 || got.DessertPrice != 6 {
		t.Fatalf("unexpected evening meal: %+v", got)
	}
}

func TestFromConfigurations(t *testing.T) {
	if res := FromConfigurations(nil); res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}

	res := FromConfigurations([]entities.Configuration{
		entities.NewEmptyConfiguration("a"),
		entities.NewEmptyConfiguration("b"),
	})
	if len(res) != 2 || res[1].UUID != "b" {
		t.Fatalf("unexpected list: %+v", res)
	}
}

func TestFromRecipe(t *testing.T) {
	res := FromRecipe(entities.Recipe{Title: "Ratatouille", Servings: 6, Steps: []string{"couper"}})
	if res.Title != "Ratatouille" || res.Servings != 6 || len(res.Steps) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
}
