package request

import (
	"strings"

	"plan_appetit/internal/domain/entities"
)

type CreateConfigurationRequest struct {
	Name string `json:"name"`
}

type RenameConfigurationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r RenameConfigurationRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

type LastViewedRequest struct {
	UUID string `json:"uuid" binding:"required"`
}

type MealRequest struct {
	Covers          int     `json:"covers" binding:"gte=0"`
	StarterPrice    float64 `json:"starterPrice" binding:"gte=0"`
	MainCoursePrice float64 `json:"mainCoursePrice" binding:"gte=0"`
	DessertPrice    float64 `json:"dessertPrice" binding:"gte=0"`
	DrinkPrice      float64 `json:"drinkPrice" binding:"gte=0"`
}

// DayRequest carries the meals in [midday, evening] order. Missing meals are
// zero, extra ones are ignored.
type DayRequest struct {
	Name  string        `json:"name"`
	Meals []MealRequest `json:"meals" binding:"dive"`
}

type WeekRequest struct {
	Name string       `json:"name"`
	Days []DayRequest `json:"days" binding:"len=7,dive"`
}

type StatsRequest struct {
	WorkedWeeks int `json:"workedWeeks" binding:"gte=0"`
}

// ConfigurationRequest is the full configuration body accepted by the
// update and statistics endpoints.
type ConfigurationRequest struct {
	UUID  string       `json:"uuid"`
	Name  string       `json:"name"`
	Week  WeekRequest  `json:"week"`
	Stats StatsRequest `json:"stats"`
}

// ToEntity builds the domain configuration. A non-empty id overrides the
// uuid carried by the body.
func (r ConfigurationRequest) ToEntity(id string) entities.Configuration {
	c := entities.Configuration{
		UUID:  strings.TrimSpace(r.UUID),
		Name:  r.Name,
		Week:  entities.Week{Name: r.Week.Name, Days: make([]entities.Day, 0, len(r.Week.Days))},
		Stats: entities.ConfigurationStats{WorkedWeeks: r.Stats.WorkedWeeks},
	}
	if id = strings.TrimSpace(id); id != "" {
		c.UUID = id
	}

	for _, d := range r.Week.Days {
		day := entities.Day{Name: d.Name}
		if len(d.Meals) > 0 {
			day.Midday = d.Meals[0].toEntity()
		}
		if len(d.Meals) > 1 {
			day.Evening = d.Meals[1].toEntity()
		}
		c.Week.Days = append(c.Week.Days, day)
	}
	return c
}

func (m MealRequest) toEntity() entities.Meal {
	return entities.Meal{
		Covers:          m.Covers,
		StarterPrice:    m.StarterPrice,
		MainCoursePrice: m.MainCoursePrice,
		DessertPrice:    m.DessertPrice,
		DrinkPrice:      m.DrinkPrice,
	}
}
