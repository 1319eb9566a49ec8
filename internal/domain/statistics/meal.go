// Package statistics derives cover and sales metrics from a planning
// configuration. Every function is pure: no storage access, no mutation.
//
// Averages divide by covers. When there are no covers the result is NaN and
// is returned as such; rendering a fallback is the caller's decision.
package statistics

import "plan_appetit/internal/domain/entities"

// MealTotal is covers × (lunch price + drink price).
func MealTotal(m entities.Meal) float64 {
	return float64(m.Covers) * MealAverage(m)
}

func MealLunchTotal(m entities.Meal) float64 {
	return float64(m.Covers) * m.LunchPrice()
}

func MealDrinkTotal(m entities.Meal) float64 {
	return float64(m.Covers) * m.DrinkPrice
}

// MealAverage is the unit price paid per cover, whatever the cover count.
func MealAverage(m entities.Meal) float64 {
	return m.LunchPrice() + m.DrinkPrice
}
