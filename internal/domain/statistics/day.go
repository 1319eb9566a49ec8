package statistics

import "plan_appetit/internal/domain/entities"

func TotalCoversOfDay(d entities.Day) int {
	return d.Midday.Covers + d.Evening.Covers
}

func TotalOfDay(d entities.Day) float64 {
	return MealTotal(d.Midday) + MealTotal(d.Evening)
}

func TotalDrinkOfDay(d entities.Day) float64 {
	return MealDrinkTotal(d.Midday) + MealDrinkTotal(d.Evening)
}

func TotalLunchOfDay(d entities.Day) float64 {
	return MealLunchTotal(d.Midday) + MealLunchTotal(d.Evening)
}

// AverageBasketPerDay divides the day's sales by the day's covers, not by the
// number of services. NaN when the day has no covers.
func AverageBasketPerDay(d entities.Day) float64 {
	return divide(TotalOfDay(d), TotalCoversOfDay(d))
}

func AverageDrinkBasketPerDay(d entities.Day) float64 {
	return divide(TotalDrinkOfDay(d), TotalCoversOfDay(d))
}

func AverageLunchBasketPerDay(d entities.Day) float64 {
	return divide(TotalLunchOfDay(d), TotalCoversOfDay(d))
}

// isWorked reports whether at least one service had covers.
func isWorked(d entities.Day) bool {
	return d.Midday.Covers > 0 || d.Evening.Covers > 0
}
