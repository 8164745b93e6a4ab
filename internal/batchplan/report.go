package batchplan

import (
	"math"
	"sort"
	"strings"
)

// Placeholder customer name when a dog's plan cannot be resolved to an
// account. Unresolved customers sort together under this literal.
const unknownCustomer = "Unknown"

// DogRecipe is one recipe line in a dog's biweekly order.
type DogRecipe struct {
	RecipeName    string  `json:"recipe_name"`
	BiweeklyGrams float64 `json:"biweekly_grams"`
	BiweeklyPacks int     `json:"biweekly_packs"`
}

// DogSubscription is the per-dog production view: what each dog receives on
// a cook date, grouped by customer rather than by recipe. It is built
// directly from plan items and does not depend on base batch configuration.
type DogSubscription struct {
	DogID              uint        `json:"dog_id"`
	DogName            string      `json:"dog_name"`
	DogWeightKg        float64     `json:"dog_weight_kg"`
	DogWeightLbs       float64     `json:"dog_weight_lbs"`
	ActivityLevel      string      `json:"activity_level"`
	CustomerName       string      `json:"customer_name"`
	CustomerEmail      string      `json:"customer_email"`
	Recipes            []DogRecipe `json:"recipes"`
	TotalBiweeklyGrams float64     `json:"total_biweekly_grams"`
	TotalBiweeklyPacks int         `json:"total_biweekly_packs"`
}

// Customer identifies the account behind a plan.
type Customer struct {
	Email    string
	FullName string
}

// BuildDogReport groups plan items by dog and resolves each dog's owning
// customer via the plan recorded on the first item encountered; a dog
// belongs to exactly one plan within a batch run. Pack counts round up per
// item, before summing across a dog's recipes. Output is sorted by customer
// name, then dog name.
func (p *Planner) BuildDogReport(items []Item, customers map[uint]Customer) []DogSubscription {
	byDog := make(map[uint]*DogSubscription)
	order := make([]uint, 0)

	for _, item := range items {
		if item.DogID == 0 || item.Recipe == "" {
			continue
		}

		subscription, ok := byDog[item.DogID]
		if !ok {
			customer, resolved := customers[item.PlanID]
			name := unknownCustomer
			if resolved && strings.TrimSpace(customer.FullName) != "" {
				name = customer.FullName
			}
			subscription = &DogSubscription{
				DogID:         item.DogID,
				DogName:       item.DogName,
				DogWeightKg:   item.DogWeightKg,
				DogWeightLbs:  KilogramsToPounds(item.DogWeightKg),
				ActivityLevel: item.ActivityLevel,
				CustomerName:  name,
				CustomerEmail: customer.Email,
				Recipes:       make([]DogRecipe, 0, 2),
			}
			byDog[item.DogID] = subscription
			order = append(order, item.DogID)
		}

		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		grams := item.SizeG * float64(qty)
		packs := int(math.Ceil(item.SizeG/p.params.PackSizeGrams)) * qty

		subscription.Recipes = append(subscription.Recipes, DogRecipe{
			RecipeName:    item.Recipe,
			BiweeklyGrams: grams,
			BiweeklyPacks: packs,
		})
		subscription.TotalBiweeklyGrams += grams
		subscription.TotalBiweeklyPacks += packs
	}

	report := make([]DogSubscription, 0, len(order))
	for _, dogID := range order {
		report = append(report, *byDog[dogID])
	}

	sort.SliceStable(report, func(i, j int) bool {
		if report[i].CustomerName != report[j].CustomerName {
			return report[i].CustomerName < report[j].CustomerName
		}
		return report[i].DogName < report[j].DogName
	})

	return report
}
