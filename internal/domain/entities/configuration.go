package entities

// DaysPerWeek is the fixed number of days carried by a Week (Monday to Sunday).
const DaysPerWeek = 7

// DefaultDayNames lists the labels used by the default skeleton, in calendar order.
var DefaultDayNames = [DaysPerWeek]string{
	"Lundi",
	"Mardi",
	"Mercredi",
	"Jeudi",
	"Vendredi",
	"Samedi",
	"Dimanche",
}

const (
	DefaultConfigurationName = "Nouvelle configuration"
	DefaultWeekName          = "Semaine 1"
)

// Configuration is a named weekly-planning document.
//
// Storage model:
//   - the whole collection is persisted as one JSON array under the
//     "configurations" key of the backing key-value store
//   - records are matched by UUID only; Name is not unique
type Configuration struct {
	UUID  string             `json:"uuid"`
	Name  string             `json:"name"`
	Week  Week               `json:"week"`
	Stats ConfigurationStats `json:"stats"`
}

// ConfigurationStats holds user-entered scalars used by annual projections.
type ConfigurationStats struct {
	WorkedWeeks int `json:"workedWeeks"`
}

// Week holds the seven days of a planning week in calendar order.
type Week struct {
	Name string `json:"name"`
	Days []Day  `json:"days"`
}

// NewEmptyConfiguration builds the default skeleton: seven days with two
// all-zero meals each and no worked weeks.
func NewEmptyConfiguration(uuid string) Configuration {
	days := make([]Day, 0, DaysPerWeek)
	for _, name := range DefaultDayNames {
		days = append(days, Day{Name: name})
	}

	return Configuration{
		UUID: uuid,
		Name: DefaultConfigurationName,
		Week: Week{
			Name: DefaultWeekName,
			Days: days,
		},
		Stats: ConfigurationStats{WorkedWeeks: 0},
	}
}

// Clone returns a deep copy so callers can mutate the result without
// touching the original's Days backing array.
func (c Configuration) Clone() Configuration {
	out := c
	if c.Week.Days != nil {
		out.Week.Days = make([]Day, len(c.Week.Days))
		copy(out.Week.Days, c.Week.Days)
	}
	return out
}
