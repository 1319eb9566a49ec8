package statistics

import (
	"math"

	"plan_appetit/internal/domain/entities"
)

// AnnualSales projects weekly sales over the user-entered number of worked weeks.
func AnnualSales(w entities.Week, workedWeeks int) float64 {
	return TotalWeeklySales(w) * float64(workedWeeks)
}

// AverageMealsPerDay is the weekly headcount over worked days, rounded to the
// nearest integer. NaN when no day is worked.
func AverageMealsPerDay(w entities.Week) float64 {
	return math.Round(divide(float64(MealsCookedPerWeek(w)), WorkedDaysPerWeek(w)))
}

// AverageMealsPerMeal is the weekly headcount over worked service slots.
func AverageMealsPerMeal(w entities.Week) float64 {
	return divide(float64(MealsCookedPerWeek(w)), WorkedMealsPerWeek(w))
}

func WorkedDaysPerYear(w entities.Week, workedWeeks int) int {
	return WorkedDaysPerWeek(w) * workedWeeks
}

func MealsCookedPerYear(w entities.Week, workedWeeks int) int {
	return MealsCookedPerWeek(w) * workedWeeks
}
