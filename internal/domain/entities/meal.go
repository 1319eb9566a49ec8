package entities

import "encoding/json"

// Meal is one service slot: how many covers and what each of them pays.
//
// Monetary representation:
//   - prices are per cover, in the restaurant's currency
//   - LunchPrice is every non-drink component summed
type Meal struct {
	Covers          int     `json:"covers"`
	StarterPrice    float64 `json:"starterPrice"`
	MainCoursePrice float64 `json:"mainCoursePrice"`
	DessertPrice    float64 `json:"dessertPrice"`
	DrinkPrice      float64 `json:"drinkPrice"`
}

// mealDocument accepts both the itemized schema and the legacy
// {covers, price} one.
type mealDocument struct {
	Covers          int      `json:"covers"`
	StarterPrice    *float64 `json:"starterPrice"`
	MainCoursePrice *float64 `json:"mainCoursePrice"`
	DessertPrice    *float64 `json:"dessertPrice"`
	DrinkPrice      *float64 `json:"drinkPrice"`
	Price           *float64 `json:"price"`
}

// LunchPrice is starter + main course + dessert.
func (m Meal) LunchPrice() float64 {
	return m.StarterPrice + m.MainCoursePrice + m.DessertPrice
}

// UnmarshalJSON maps a legacy single aggregate price onto MainCoursePrice when
// no itemized price is present.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var doc mealDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*m = Meal{
		Covers:          doc.Covers,
		StarterPrice:    valueOrZero(doc.StarterPrice),
		MainCoursePrice: valueOrZero(doc.MainCoursePrice),
		DessertPrice:    valueOrZero(doc.DessertPrice),
		DrinkPrice:      valueOrZero(doc.DrinkPrice),
	}

	itemized := doc.StarterPrice != nil || doc.MainCoursePrice != nil || doc.DessertPrice != nil
	if !itemized && doc.Price != nil {
		m.MainCoursePrice = *doc.Price
	}
	return nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
