package entities

import "encoding/json"

// MealsPerDay is the fixed number of services in a Day: midday then evening.
const MealsPerDay = 2

// Day is one calendar day with exactly two services.
//
// The persisted form keeps the positional array used by existing documents:
//
//	{"name": "Lundi", "meals": [<midday>, <evening>]}
type Day struct {
	Name    string
	Midday  Meal
	Evening Meal
}

type dayDocument struct {
	Name  string `json:"name"`
	Meals []Meal `json:"meals"`
}

// Meals returns both services in positional order.
func (d Day) Meals() [MealsPerDay]Meal {
	return [MealsPerDay]Meal{d.Midday, d.Evening}
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayDocument{
		Name:  d.Name,
		Meals: []Meal{d.Midday, d.Evening},
	})
}

// UnmarshalJSON fills a missing service with a zero Meal and ignores entries
// past the evening slot.
func (d *Day) UnmarshalJSON(data []byte) error {
	var doc dayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*d = Day{Name: doc.Name}
	if len(doc.Meals) > 0 {
		d.Midday = doc.Meals[0]
	}
	if len(doc.Meals) > 1 {
		d.Evening = doc.Meals[1]
	}
	return nil
}
