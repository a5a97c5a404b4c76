package plan

// NutritionalInfo is the macro triple the generator reports per meal
// and per day.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
}

// DailyStandard is the fixed daily nutrition reference used for
// display comparison. Constants, not derived.
var DailyStandard = NutritionalInfo{Calories: 2150, Protein: 60, Carbs: 300}

// IngredientDetail is one priced ingredient line in a meal. Name is
// the join key against price overrides. Quantity is free text and is
// never used in price math: unitPrice and totalPrice come from the
// generator independently and are not guaranteed consistent.
type IngredientDetail struct {
	Name       string  `json:"name"`
	Quantity   string  `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Category is the closed set of shopping-list groupings.
type Category string

const (
	CategoryProtein     Category = "Protein"
	CategorySayur       Category = "Sayur"
	CategoryKarbohidrat Category = "Karbohidrat"
	CategoryBuah        Category = "Buah"
	CategoryBumbu       Category = "Bumbu"
	CategoryLainnya     Category = "Lainnya"
)

// ShoppingItem is one line of the consolidated shopping list. The
// estimated price serves as both the unit and total reference price
// at this granularity.
type ShoppingItem struct {
	Name           string   `json:"name"`
	Quantity       string   `json:"quantity"`
	Category       Category `json:"category"`
	EstimatedPrice float64  `json:"estimatedPrice"`
}

// Meal is one of the three daily meals.
type Meal struct {
	Title       string             `json:"title"`
	Ingredients []IngredientDetail `json:"ingredients"`
	Nutrition   NutritionalInfo    `json:"nutrition"`
}

// DayPlan covers one day of the plan.
type DayPlan struct {
	Day        int             `json:"day"`
	Breakfast  Meal            `json:"breakfast"`
	Lunch      Meal            `json:"lunch"`
	Dinner     Meal            `json:"dinner"`
	DailyTotal NutritionalInfo `json:"dailyTotal"`
}

// SourceLink is an optional citation returned by the generator.
type SourceLink struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GenerationResult is the structured plan document the external
// generator returns.
type GenerationResult struct {
	DailyPlans         []DayPlan      `json:"dailyPlans"`
	ShoppingList       []ShoppingItem `json:"shoppingList"`
	TotalEstimatedCost float64        `json:"totalEstimatedCost"`
	BudgetAnalysis     string         `json:"budgetAnalysis"`
	Tips               []string       `json:"tips"`
	SourceLinks        []SourceLink   `json:"sourceLinks,omitempty"`
}
