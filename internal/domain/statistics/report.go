package statistics

import (
	"strconv"

	"plan_appetit/internal/domain/entities"
)

// DaySummary is the display form of one day's metrics. Amounts are two-decimal strings.
type DaySummary struct {
	Name               string `json:"name"`
	TotalCovers        int    `json:"totalCovers"`
	Total              string `json:"total"`
	TotalDrink         string `json:"totalDrink"`
	TotalLunch         string `json:"totalLunch"`
	AverageBasket      string `json:"averageBasket"`
	AverageDrinkBasket string `json:"averageDrinkBasket"`
	AverageLunchBasket string `json:"averageLunchBasket"`
	MiddayAverage      string `json:"middayAverage"`
	EveningAverage     string `json:"eveningAverage"`
}

// WeekSummary is the display form of a week's metrics.
type WeekSummary struct {
	Name               string `json:"name"`
	Covers             int    `json:"covers"`
	TotalSales         string `json:"totalSales"`
	TotalDrinkSales    string `json:"totalDrinkSales"`
	TotalLunchSales    string `json:"totalLunchSales"`
	AverageBasket      string `json:"averageBasket"`
	AverageDrinkBasket string `json:"averageDrinkBasket"`
	AverageLunchBasket string `json:"averageLunchBasket"`
	WorkedDays         int    `json:"workedDays"`
	WorkedMeals        int    `json:"workedMeals"`
	MealsCooked        int    `json:"mealsCooked"`
}

// YearProjection is the display form of the annual projections.
type YearProjection struct {
	WorkedWeeks         int    `json:"workedWeeks"`
	AnnualSales         string `json:"annualSales"`
	AverageMealsPerDay  string `json:"averageMealsPerDay"`
	AverageMealsPerMeal string `json:"averageMealsPerMeal"`
	WorkedDaysPerYear   int    `json:"workedDaysPerYear"`
	MealsCookedPerYear  int    `json:"mealsCookedPerYear"`
}

// Report bundles every display metric of a configuration.
type Report struct {
	ConfigurationUUID string         `json:"configurationUuid"`
	ConfigurationName string         `json:"configurationName"`
	Days              []DaySummary   `json:"days"`
	Week              WeekSummary    `json:"week"`
	Year              YearProjection `json:"year"`
}

// FormatAmount renders exactly two decimals. NaN renders as "NaN".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func SummarizeDay(d entities.Day) DaySummary {
	return DaySummary{
		Name:               d.Name,
		TotalCovers:        TotalCoversOfDay(d),
		Total:              FormatAmount(TotalOfDay(d)),
		TotalDrink:         FormatAmount(TotalDrinkOfDay(d)),
		TotalLunch:         FormatAmount(TotalLunchOfDay(d)),
		AverageBasket:      FormatAmount(AverageBasketPerDay(d)),
		AverageDrinkBasket: FormatAmount(AverageDrinkBasketPerDay(d)),
		AverageLunchBasket: FormatAmount(AverageLunchBasketPerDay(d)),
		MiddayAverage:      FormatAmount(MealAverage(d.Midday)),
		EveningAverage:     FormatAmount(MealAverage(d.Evening)),
	}
}

func SummarizeWeek(w entities.Week) WeekSummary {
	return WeekSummary{
		Name:               w.Name,
		Covers:             CoversPerWeek(w),
		TotalSales:         FormatAmount(TotalWeeklySales(w)),
		TotalDrinkSales:    FormatAmount(TotalWeeklyDrinkSales(w)),
		TotalLunchSales:    FormatAmount(TotalWeeklyLunchSales(w)),
		AverageBasket:      FormatAmount(AverageBasketPerWeek(w)),
		AverageDrinkBasket: FormatAmount(AverageDrinkBasketPerWeek(w)),
		AverageLunchBasket: FormatAmount(AverageLunchBasketPerWeek(w)),
		WorkedDays:         WorkedDaysPerWeek(w),
		WorkedMeals:        WorkedMealsPerWeek(w),
		MealsCooked:        MealsCookedPerWeek(w),
	}
}

func ProjectYear(w entities.Week, workedWeeks int) YearProjection {
	return YearProjection{
		WorkedWeeks:         workedWeeks,
		AnnualSales:         FormatAmount(AnnualSales(w, workedWeeks)),
		AverageMealsPerDay:  strconv.FormatFloat(AverageMealsPerDay(w), 'f', 0, 64),
		AverageMealsPerMeal: FormatAmount(AverageMealsPerMeal(w)),
		WorkedDaysPerYear:   WorkedDaysPerYear(w, workedWeeks),
		MealsCookedPerYear:  MealsCookedPerYear(w, workedWeeks),
	}
}

// BuildReport computes every display metric of c. It does not modify c.
func BuildReport(c entities.Configuration) Report {
	days := make([]DaySummary, 0, len(c.Week.Days))
	for _, d := range c.Week.Days {
		days = append(days, SummarizeDay(d))
	}

	return Report{
		ConfigurationUUID: c.UUID,
		ConfigurationName: c.Name,
		Days:              days,
		Week:              SummarizeWeek(c.Week),
		Year:              ProjectYear(c.Week, c.Stats.WorkedWeeks),
	}
}
