package plan

import (
	"encoding/json"
	"fmt"
)

// ParseResult decodes a generator payload and validates its shape.
// A payload that fails either step is malformed in its entirety; no
// partial plan is ever returned.
func ParseResult(data []byte) (*GenerationResult, error) {
	var result GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse plan payload: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("plan payload incomplete: %w", err)
	}
	return &result, nil
}

// Validate checks that every field the generator contract requires is
// present.
func (r *GenerationResult) Validate() error {
	if len(r.DailyPlans) == 0 {
		return fmt.Errorf("no daily plans")
	}
	for i, d := range r.DailyPlans {
		for _, m := range []struct {
			slot string
			meal Meal
		}{
			{"breakfast", d.Breakfast},
			{"lunch", d.Lunch},
			{"dinner", d.Dinner},
		} {
			if m.meal.Title == "" {
				return fmt.Errorf("day %d: %s has no title", i+1, m.slot)
			}
			if len(m.meal.Ingredients) == 0 {
				return fmt.Errorf("day %d: %s has no ingredients", i+1, m.slot)
			}
			for _, ing := range m.meal.Ingredients {
				if ing.Name == "" {
					return fmt.Errorf("day %d: %s has an unnamed ingredient", i+1, m.slot)
				}
			}
		}
	}
	if len(r.ShoppingList) == 0 {
		return fmt.Errorf("no shopping list")
	}
	for _, item := range r.ShoppingList {
		if item.Name == "" {
			return fmt.Errorf("shopping list has an unnamed item")
		}
	}
	if r.BudgetAnalysis == "" {
		return fmt.Errorf("no budget analysis narrative")
	}
	return nil
}
