package budget

// Status classifies how a requested budget compares to the minimum
// rational cost of eating in the selected region.
type Status string

const (
	StatusDanger  Status = "danger"
	StatusWarning Status = "warning"
	StatusSuccess Status = "success"
)

// dangerThreshold is the fraction of the minimum rational price below
// which a budget is considered nutritionally unviable.
const dangerThreshold = 0.75

// Analysis is the feasibility verdict for one preference snapshot.
// It is derived data, recomputed on every change and never persisted.
type Analysis struct {
	CostPerMeal float64 `json:"costPerMeal"`
	MinRational float64 `json:"minRational"`
	Status      Status  `json:"status"`
	Message     string  `json:"message"`
	Reason      string  `json:"reason"`
	Advice      string  `json:"advice"`
	// Disabled gates plan generation entirely: when true no request
	// may be sent to the generator.
	Disabled bool `json:"isDisabled"`
}

// Analyze classifies a preference snapshot against the region price
// table. It is a pure function and never fails: zero meal counts take
// a divisor of 1 and unknown cities take the table's default row.
func Analyze(prefs UserPreferences, table RegionPriceTable) Analysis {
	totalMeals := prefs.TotalMeals()
	if totalMeals == 0 {
		totalMeals = 1
	}
	costPerMeal := prefs.Budget / float64(totalMeals)
	minRational := table.MinRationalPrice(prefs.City, prefs.Lifestyle)

	a := Analysis{
		CostPerMeal: costPerMeal,
		MinRational: minRational,
		Status:      StatusSuccess,
		Message:     "Budget Ideal",
		Reason:      "Budget cukup untuk standar gizi 4 sehat 5 sempurna dengan protein hewani berkualitas.",
		Advice:      "Bunda bisa lebih leluasa memilih variasi menu mingguan dan menyisipkan buah segar setiap hari.",
	}

	switch {
	case costPerMeal < minRational*dangerThreshold:
		a.Status = StatusDanger
		a.Message = "Terlalu Rendah"
		a.Reason = "Anggaran di bawah rata-rata biaya hidup sehat di wilayah ini. Berisiko kurang gizi seimbang."
		a.Advice = "Sebaiknya Bunda menambah anggaran atau kurangi durasi hari agar kualitas masakan tetap terjaga."
		a.Disabled = true
	case costPerMeal < minRational:
		a.Status = StatusWarning
		a.Message = "Sangat Hemat"
		a.Reason = "Anggaran di batas minimal. Membutuhkan kreativitas tinggi dalam memilih bahan pangan."
		a.Advice = "Fokus pada protein nabati (tahu/tempe). Disarankan belanja di pasar tradisional pagi hari."
	}

	return a
}
