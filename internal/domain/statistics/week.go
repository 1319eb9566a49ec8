package statistics

import (
	"math"

	"plan_appetit/internal/domain/entities"
)

// CoversPerWeek sums covers over every service of the week.
func CoversPerWeek(w entities.Week) int {
	total := 0
	for _, d := range w.Days {
		total += TotalCoversOfDay(d)
	}
	return total
}

func TotalWeeklySales(w entities.Week) float64 {
	total := 0.0
	for _, d := range w.Days {
		total += TotalOfDay(d)
	}
	return total
}

func TotalWeeklyDrinkSales(w entities.Week) float64 {
	total := 0.0
	for _, d := range w.Days {
		total += TotalDrinkOfDay(d)
	}
	return total
}

func TotalWeeklyLunchSales(w entities.Week) float64 {
	total := 0.0
	for _, d := range w.Days {
		total += TotalLunchOfDay(d)
	}
	return total
}

// AverageBasketPerWeek divides weekly sales by weekly covers.
func AverageBasketPerWeek(w entities.Week) float64 {
	return divide(TotalWeeklySales(w), CoversPerWeek(w))
}

func AverageDrinkBasketPerWeek(w entities.Week) float64 {
	return divide(TotalWeeklyDrinkSales(w), CoversPerWeek(w))
}

func AverageLunchBasketPerWeek(w entities.Week) float64 {
	return divide(TotalWeeklyLunchSales(w), CoversPerWeek(w))
}

// WorkedDaysPerWeek counts days where the midday or the evening service had covers.
func WorkedDaysPerWeek(w entities.Week) int {
	count := 0
	for _, d := range w.Days {
		if isWorked(d) {
			count++
		}
	}
	return count
}

// WorkedMealsPerWeek counts service slots with covers, between 0 and 14.
func WorkedMealsPerWeek(w entities.Week) int {
	count := 0
	for _, d := range w.Days {
		for _, m := range d.Meals() {
			if m.Covers > 0 {
				count++
			}
		}
	}
	return count
}

// MealsCookedPerWeek is the weekly headcount: covers summed over all slots.
func MealsCookedPerWeek(w entities.Week) int {
	return CoversPerWeek(w)
}

func divide(total float64, covers int) float64 {
	if covers == 0 {
		return math.NaN()
	}
	return total / float64(covers)
}
