package batchplan

import (
	"fmt"
	"math"
	"sort"
)

// RecipeRequirement is the production requirement for one recipe on a cook
// date. BatchScaleFactor is the continuous ratio of buffered demand to one
// base batch's yield and is the sole basis for ingredient quantities;
// NumberOfBatches is its ceiling and exists only for human reference.
type RecipeRequirement struct {
	Recipe            string             `json:"recipe"`
	TotalGramsNeeded  float64            `json:"total_grams_needed"`
	TotalPoundsNeeded float64            `json:"total_pounds_needed"`
	NumberOfPacks     int                `json:"number_of_packs"`
	BatchScaleFactor  float64            `json:"batch_scale_factor"`
	NumberOfBatches   int                `json:"number_of_batches"`
	Ingredients       map[string]float64 `json:"ingredient_requirements"`
}

// UnitsOrdered converts raw customer demand into pack counts. Packs reflect
// what customers ordered, so the waste buffer never applies here.
func UnitsOrdered(totalGrams, packSizeGrams float64) int {
	return int(math.Ceil(totalGrams / packSizeGrams))
}

// ProductionRequirement applies the waste buffer to raw demand. Ingredient
// purchasing and batch counts derive from this figure, never pack counts.
func ProductionRequirement(totalGrams, wasteBuffer float64) float64 {
	return totalGrams * wasteBuffer
}

// AggregateRecipes sums plan item demand into per-recipe production
// requirements, scaling each recipe's base formulation by the buffered
// demand ratio. Recipes without a configured base batch are excluded and
// reported in the returned warnings. Output is sorted by recipe name.
func (p *Planner) AggregateRecipes(items []Item) ([]RecipeRequirement, []string) {
	totals := make(map[string]float64)
	for _, item := range items {
		if item.Recipe == "" || item.DogID == 0 {
			continue
		}
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		totals[item.Recipe] += item.SizeG * float64(qty)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	requirements := make([]RecipeRequirement, 0, len(names))
	warnings := make([]string, 0)
	for _, name := range names {
		batch, ok := p.catalog.Batch(name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("recipe %q has plan demand but no base batch configuration; excluded from production totals", name))
			continue
		}

		totalGrams := totals[name]
		buffered := ProductionRequirement(totalGrams, p.params.WasteBuffer)
		scale := buffered / batch.TotalGrams

		ingredients := make(map[string]float64, len(batch.Ingredients))
		for ingredient, baseGrams := range batch.Ingredients {
			ingredients[ingredient] = baseGrams * scale
		}

		requirements = append(requirements, RecipeRequirement{
			Recipe:            name,
			TotalGramsNeeded:  totalGrams,
			TotalPoundsNeeded: GramsToPounds(buffered),
			NumberOfPacks:     UnitsOrdered(totalGrams, p.params.PackSizeGrams),
			BatchScaleFactor:  scale,
			NumberOfBatches:   int(math.Ceil(scale)),
			Ingredients:       ingredients,
		})
	}

	return requirements, warnings
}
