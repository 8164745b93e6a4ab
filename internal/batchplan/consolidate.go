package batchplan

import (
	"math"
	"sort"
	"strings"
)

// ConsolidatedIngredient is one line on the cross-recipe shopping list.
type ConsolidatedIngredient struct {
	Ingredient    string  `json:"ingredient"`
	Grams         float64 `json:"grams"`
	Pounds        float64 `json:"pounds"`
	Kilograms     float64 `json:"kg"`
	Category      string  `json:"category"`
	CategoryIcon  string  `json:"category_icon"`
	CategoryColor string  `json:"category_color"`
}

// ConsolidateIngredients merges per-recipe ingredient requirements into a
// single shopping list. Premix members collapse into one aggregate line,
// since the supplement blend is purchased as a unit even though it is
// tracked per component for formulation accuracy. Output is sorted by
// category, then by descending grams within each category.
func (p *Planner) ConsolidateIngredients(requirements []RecipeRequirement) []ConsolidatedIngredient {
	flat := make(map[string]float64)
	for _, requirement := range requirements {
		for ingredient, grams := range requirement.Ingredients {
			flat[ingredient] += grams
		}
	}

	consolidated := make([]ConsolidatedIngredient, 0, len(flat))
	premixTotal := 0.0
	for ingredient, grams := range flat {
		if p.catalog.IsPremixMember(ingredient) {
			premixTotal += grams
			continue
		}
		category := p.catalog.Categorize(ingredient)
		consolidated = append(consolidated, newConsolidatedIngredient(ingredient, grams, category))
	}

	if premixTotal > 0 {
		premix := p.catalog.Premix()
		consolidated = append(consolidated, newConsolidatedIngredient(premix.Name+" (Total)", premixTotal, premix))
	}

	sortConsolidatedIngredients(consolidated)
	return consolidated
}

func newConsolidatedIngredient(name string, grams float64, category Category) ConsolidatedIngredient {
	return ConsolidatedIngredient{
		Ingredient:    name,
		Grams:         grams,
		Pounds:        GramsToPounds(grams),
		Kilograms:     GramsToKilograms(grams),
		Category:      category.Name,
		CategoryIcon:  category.Icon,
		CategoryColor: category.Color,
	}
}

func sortConsolidatedIngredients(items []ConsolidatedIngredient) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		if !almostEqual(items[i].Grams, items[j].Grams) {
			return items[i].Grams > items[j].Grams
		}
		return strings.ToLower(items[i].Ingredient) < strings.ToLower(items[j].Ingredient)
	})
}

func almostEqual(a, b float64) bool {
	const epsilon = 1e-6
	return math.Abs(a-b) <= epsilon
}
