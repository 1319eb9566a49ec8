package response

import "plan_appetit/internal/domain/entities"

type MealResponse struct {
	Covers          int     `json:"covers"`
	StarterPrice    float64 `json:"starterPrice"`
	MainCoursePrice float64 `json:"mainCoursePrice"`
	DessertPrice    float64 `json:"dessertPrice"`
	DrinkPrice      float64 `json:"drinkPrice"`
}

type DayResponse struct {
	Name  string         `json:"name"`
	Meals []MealResponse `json:"meals"`
}

type WeekResponse struct {
	Name string        `json:"name"`
	Days []DayResponse `json:"days"`
}

type StatsResponse struct {
	WorkedWeeks int `json:"workedWeeks"`
}

type ConfigurationResponse struct {
	UUID  string        `json:"uuid"`
	Name  string        `json:"name"`
	Week  WeekResponse  `json:"week"`
	Stats StatsResponse `json:"stats"`
}

type LastViewedResponse struct {
	UUID string `json:"uuid"`
}

func FromConfiguration(c entities.Configuration) ConfigurationResponse {
	days := make([]DayResponse, 0, len(c.Week.Days))
	for _, d := range c.Week.Days {
		meals := d.Meals()
		days = append(days, DayResponse{
			Name:  d.Name,
			Meals: []MealResponse{fromMeal(meals[0]), fromMeal(meals[1])},
		})
	}

	return ConfigurationResponse{
		UUID:  c.UUID,
		Name:  c.Name,
		Week:  WeekResponse{Name: c.Week.Name, Days: days},
		Stats: StatsResponse{WorkedWeeks: c.Stats.WorkedWeeks},
	}
}

func FromConfigurations(configs []entities.Configuration) []ConfigurationResponse {
	res := make([]ConfigurationResponse, 0, len(configs))
	for _, c := range configs {
		res = append(res, FromConfiguration(c))
	}
	return res
}

func fromMeal(m entities.Meal) MealResponse {
	return MealResponse{
		Covers:          m.Covers,
		StarterPrice:    m.StarterPrice,
		MainCoursePrice: m.MainCoursePrice,
		DessertPrice:    m.DessertPrice,
		DrinkPrice:      m.DrinkPrice,
	}
}
