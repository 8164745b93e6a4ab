package batchplan

import "time"

// Item is one plan item row flattened for planning: the recipe, the dog it
// feeds, and the authoritative biweekly gram amount stored upstream.
type Item struct {
	PlanID        uint
	DogID         uint
	DogName       string
	DogWeightKg   float64
	ActivityLevel string
	Recipe        string
	Qty           int
	SizeG         float64
}

// Params are the planning knobs applied to every recipe.
type Params struct {
	PackSizeGrams float64
	WasteBuffer   float64
}

// Planner computes batch plans from plan items using an explicit catalog and
// params, keeping the configuration substitutable in tests.
type Planner struct {
	catalog *Catalog
	params  Params
}

// NewPlanner builds a Planner. A nil catalog falls back to the production
// default.
func NewPlanner(catalog *Catalog, params Params) *Planner {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Planner{catalog: catalog, params: params}
}

// Plan is the complete production picture for one cook date.
type Plan struct {
	BatchDate               time.Time
	OrderByDate             time.Time
	DeliveryByDate          time.Time
	RecipeRequirements      []RecipeRequirement
	ConsolidatedIngredients []ConsolidatedIngredient
	DogSubscriptions        []DogSubscription
	TotalPacks              int
	TotalBatches            int
	Warnings                []string
}

// Build runs the full pipeline for a cook date: per-recipe aggregation,
// ingredient consolidation, and the independent per-dog report. An empty
// item set yields a valid zero-valued plan with deadlines still derived from
// the batch date.
func (p *Planner) Build(batchDate time.Time, items []Item, customers map[uint]Customer, scheduler Scheduler) Plan {
	requirements, warnings := p.AggregateRecipes(items)
	consolidated := p.ConsolidateIngredients(requirements)
	subscriptions := p.BuildDogReport(items, customers)

	totalPacks := 0
	totalBatches := 0
	for _, requirement := range requirements {
		totalPacks += requirement.NumberOfPacks
		totalBatches += requirement.NumberOfBatches
	}

	return Plan{
		BatchDate:               AtNoonUTC(batchDate),
		OrderByDate:             scheduler.OrderByDate(batchDate),
		DeliveryByDate:          scheduler.DeliveryByDate(batchDate),
		RecipeRequirements:      requirements,
		ConsolidatedIngredients: consolidated,
		DogSubscriptions:        subscriptions,
		TotalPacks:              totalPacks,
		TotalBatches:            totalBatches,
		Warnings:                warnings,
	}
}
