package entities

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewEmptyConfiguration(t *testing.T) {
	c := NewEmptyConfiguration("cfg-1")

	if c.UUID != "cfg-1" {
		t.Fatalf("expected uuid cfg-1, got %q", c.UUID)
	}
	if c.Stats.WorkedWeeks != 0 {
		t.Fatalf("expected 0 worked weeks, got %d", c.Stats.WorkedWeeks)
	}
	if len(c.Week.Days) != DaysPerWeek {
		t.Fatalf("expected %d days, got %d", DaysPerWeek, len(c.Week.Days))
	}
	for i, d := range c.Week.Days {
		if d.Name != DefaultDayNames[i] {
			t.Fatalf("day %d: expected %q, got %q", i, DefaultDayNames[i], d.Name)
		}
		if d.Midday != (Meal{}) || d.Evening != (Meal{}) {
			t.Fatalf("day %d: expected zero meals, got %+v", i, d)
		}
	}
}

func TestDay_JSONKeepsTwoMeals(t *testing.T) {
	c := NewEmptyConfiguration("cfg-1")
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Week struct {
			Days []struct {
				Meals []json.RawMessage `json:"meals"`
			} `json:"days"`
		} `json:"week"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, d := range doc.Week.Days {
		if len(d.Meals) != MealsPerDay {
			t.Fatalf("day %d: expected %d meals on the wire, got %d", i, MealsPerDay, len(d.Meals))
		}
	}
}

func TestDay_UnmarshalNormalizesArity(t *testing.T) {
	t.Run("single meal", func(t *testing.T) {
		var d Day
		if err := json.Unmarshal([]byte(`{"name":"Lundi","meals":[{"covers":3}]}`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Midday.Covers != 3 || d.Evening != (Meal{}) {
			t.Fatalf("unexpected day: %+v", d)
		}
	})

	t.Run("no meals", func(t *testing.T) {
		var d Day
		if err := json.Unmarshal([]byte(`{"name":"Mardi"}`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Meals()) != MealsPerDay {
			t.Fatalf("expected %d meals", MealsPerDay)
		}
	})

	t.Run("extra meals ignored", func(t *testing.T) {
		var d Day
		if err := json.Unmarshal([]byte(`{"name":"Mercredi","meals":[{"covers":1},{"covers":2},{"covers":9}]}`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Midday.Covers != 1 || d.Evening.Covers != 2 {
			t.Fatalf("unexpected day: %+v", d)
		}
		out, _ := json.Marshal(d)
		if strings.Contains(string(out), `"covers":9`) {
			t.Fatalf("third meal should be dropped: %s", out)
		}
	})
}

func TestMeal_UnmarshalLegacyPrice(t *testing.T) {
	var m Meal
	if err := json.Unmarshal([]byte(`{"covers":4,"price":18.5}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Covers != 4 || m.MainCoursePrice != 18.5 || m.LunchPrice() != 18.5 || m.DrinkPrice != 0 {
		t.Fatalf("unexpected meal: %+v", m)
	}

	var itemized Meal
	if err := json.Unmarshal([]byte(`{"covers":1,"starterPrice":5,"mainCoursePrice":12,"dessertPrice":4,"drinkPrice":3,"price":99}`), &itemized); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if itemized.LunchPrice() != 21 || itemized.DrinkPrice != 3 {
		t.Fatalf("itemized prices must win over legacy price: %+v", itemized)
	}
}

func TestConfiguration_Clone(t *testing.T) {
	c := NewEmptyConfiguration("cfg-1")
	cp := c.Clone()
	cp.Week.Days[0].Midday.Covers = 10

	if c.Week.Days[0].Midday.Covers != 0 {
		t.Fatalf("clone shares days with original")
	}
}
