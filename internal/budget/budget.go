package budget

// Lifestyle is the cost/quality tier a household plans meals for.
// The tiers are ordered ascending: Sederhana < Normal < Mewah.
type Lifestyle string

const (
	LifestyleSederhana Lifestyle = "Sederhana"
	LifestyleNormal    Lifestyle = "Normal"
	LifestyleMewah     Lifestyle = "Mewah"
)

// ParseLifestyle maps a raw string onto the closed Lifestyle set.
// Anything unrecognized falls back to Normal.
func ParseLifestyle(s string) Lifestyle {
	switch Lifestyle(s) {
	case LifestyleSederhana, LifestyleNormal, LifestyleMewah:
		return Lifestyle(s)
	}
	return LifestyleNormal
}

// UserPreferences is an immutable snapshot of what the user asked for.
type UserPreferences struct {
	Budget          float64   `json:"budget"`
	DurationDays    int       `json:"durationDays"`
	PortionsPerMeal int       `json:"portionsPerMeal"`
	NumberOfPeople  int       `json:"numberOfPeople"`
	Lifestyle       Lifestyle `json:"lifestyle"`
	City            string    `json:"city"`
}

// TotalMeals is the number of individual meals the budget has to cover.
func (p UserPreferences) TotalMeals() int {
	return p.DurationDays * p.NumberOfPeople * p.PortionsPerMeal
}
