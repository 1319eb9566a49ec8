package request

import (
	"testing"

	"plan_appetit/internal/domain/entities"
)

func TestConfigurationRequest_ToEntity(t *testing.T) {
	days := make([]DayRequest, entities.DaysPerWeek)
	days[0] = DayRequest{Name: "Lundi", Meals: []MealRequest{
		{Covers: 2, MainCoursePrice: 10},
		{Covers: 3, DrinkPrice: 4},
		{Covers: 99},
	}}
	days[1] = DayRequest{Name: "Mardi", Meals: []MealRequest{{Covers: 1}}}

	r := ConfigurationRequest{
		UUID:  " body-id ",
		Name:  "Terrasse",
		Week:  WeekRequest{Name: "Semaine 1", Days: days},
		Stats: StatsRequest{WorkedWeeks: 40},
	}

	c := r.ToEntity("")
	if c.UUID != "body-id" || c.Name != "Terrasse" || c.Stats.WorkedWeeks != 40 {
		t.Fatalf("unexpected configuration: %+v", c)
	}
	if len(c.Week.Days) != entities.DaysPerWeek {
		t.Fatalf("expected 7 days, got %d", len(c.Week.Days))
	}
	if c.Week.Days[0].Midday.MainCoursePrice != 10 || c.Week.Days[0].Evening.Covers != 3 {
		t.Fatalf("unexpected first day: %+v", c.Week.Days[0])
	}
	if c.Week.Days[1].Midday.Covers != 1 || c.Week.Days[1].Evening != (entities.Meal{}) {
		t.Fatalf("missing evening must be zero: %+v", c.Week.Days[1])
	}

	if got := r.ToEntity(" path-id ").UUID; got != "path-id" {
		t.Fatalf("expected path id to win, got %q", got)
	}
}

func TestRenameConfigurationRequest_ResolveName(t *testing.T) {
	if got := (RenameConfigurationRequest{Name: "  Été  "}).ResolveName(); got != "Été" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestRecipeRequest_ToEntity(t *testing.T) {
	e := RecipeRequest{Dish: "Ratatouille", Covers: 6, Constraints: []string{"vegan"}}.ToEntity()
	if e.Dish != "Ratatouille" || e.Covers != 6 || len(e.Constraints) != 1 {
		t.Fatalf("unexpected entity: %+v", e)
	}
}
