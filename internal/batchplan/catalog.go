package batchplan

// BaseBatch is the reference formulation for one recipe: a fixed total yield
// and the gram composition that produces it. Scale factors are computed
// against TotalGrams, so the composition is assumed proportional at any size.
type BaseBatch struct {
	Recipe      string
	TotalGrams  float64
	Ingredients map[string]float64
}

// Category carries the reporting metadata attached to consolidated
// ingredient lines.
type Category struct {
	Name  string
	Icon  string
	Color string
}

// Uncategorized is assigned to ingredients missing from the category table.
var Uncategorized = Category{Name: "Other", Icon: "📦", Color: "gray"}

// Catalog bundles the static production configuration: base recipe batches,
// the ingredient category table, and the premix member list. It is passed
// explicitly into the Planner so tests can substitute their own.
type Catalog struct {
	batches       map[string]BaseBatch
	categories    map[string]Category
	premix        Category
	premixMembers map[string]struct{}
}

// NewCatalog builds a Catalog from explicit configuration. The categories
// map is keyed by ingredient name; premixMembers lists the ingredients that
// collapse into a single reporting line.
func NewCatalog(batches []BaseBatch, categories map[string]Category, premix Category, premixMembers []string) *Catalog {
	catalog := &Catalog{
		batches:       make(map[string]BaseBatch, len(batches)),
		categories:    make(map[string]Category, len(categories)),
		premix:        premix,
		premixMembers: make(map[string]struct{}, len(premixMembers)),
	}
	for _, batch := range batches {
		catalog.batches[batch.Recipe] = batch
	}
	for ingredient, category := range categories {
		catalog.categories[ingredient] = category
	}
	for _, member := range premixMembers {
		catalog.premixMembers[member] = struct{}{}
	}
	return catalog
}

// Batch returns the base formulation for a recipe, if one is configured.
func (c *Catalog) Batch(recipe string) (BaseBatch, bool) {
	batch, ok := c.batches[recipe]
	return batch, ok
}

// Categorize resolves an ingredient to its category, falling back to
// Uncategorized.
func (c *Catalog) Categorize(ingredient string) Category {
	if category, ok := c.categories[ingredient]; ok {
		return category
	}
	return Uncategorized
}

// Premix returns the category whose members are consolidated into one line.
func (c *Catalog) Premix() Category {
	return c.premix
}

// IsPremixMember reports whether an ingredient belongs to the premix.
func (c *Catalog) IsPremixMember(ingredient string) bool {
	_, ok := c.premixMembers[ingredient]
	return ok
}

// Production category table.
var (
	categoryProtein     = Category{Name: "Protein", Icon: "🥩", Color: "red"}
	categoryGrains      = Category{Name: "Grains", Icon: "🌾", Color: "amber"}
	categoryProduce     = Category{Name: "Produce", Icon: "🥕", Color: "green"}
	categorySupplements = Category{Name: "Supplements", Icon: "💊", Color: "purple"}
)

var defaultPremixMembers = []string{
	"Eggshell Calcium",
	"Canine Vitamin Premix",
	"Omega Fish Oil",
	"Kelp Powder",
}

// DefaultCatalog returns the production kitchen configuration.
func DefaultCatalog() *Catalog {
	batches := []BaseBatch{
		{
			Recipe:     "Beef & Quinoa",
			TotalGrams: 22000,
			Ingredients: map[string]float64{
				"Ground Beef":           9900,
				"Beef Liver":            1100,
				"Quinoa":                4400,
				"Carrots":               2200,
				"Green Beans":           1980,
				"Pumpkin Puree":         1320,
				"Eggshell Calcium":      440,
				"Canine Vitamin Premix": 330,
				"Omega Fish Oil":        220,
				"Kelp Powder":           110,
			},
		},
		{
			Recipe:     "Chicken & Rice",
			TotalGrams: 20000,
			Ingredients: map[string]float64{
				"Chicken Thigh":         9000,
				"Chicken Liver":         1000,
				"Brown Rice":            4000,
				"Sweet Potato":          2400,
				"Spinach":               1400,
				"Peas":                  1200,
				"Eggshell Calcium":      400,
				"Canine Vitamin Premix": 300,
				"Omega Fish Oil":        200,
				"Kelp Powder":           100,
			},
		},
		{
			Recipe:     "Turkey & Pumpkin",
			TotalGrams: 21000,
			Ingredients: map[string]float64{
				"Ground Turkey":         9450,
				"Turkey Heart":          1050,
				"Pumpkin Puree":         3150,
				"Oats":                  2940,
				"Zucchini":              2100,
				"Cranberries":           1260,
				"Eggshell Calcium":      420,
				"Canine Vitamin Premix": 315,
				"Omega Fish Oil":        210,
				"Kelp Powder":           105,
			},
		},
	}

	categories := map[string]Category{
		"Ground Beef":           categoryProtein,
		"Beef Liver":            categoryProtein,
		"Chicken Thigh":         categoryProtein,
		"Chicken Liver":         categoryProtein,
		"Ground Turkey":         categoryProtein,
		"Turkey Heart":          categoryProtein,
		"Quinoa":                categoryGrains,
		"Brown Rice":            categoryGrains,
		"Oats":                  categoryGrains,
		"Carrots":               categoryProduce,
		"Green Beans":           categoryProduce,
		"Pumpkin Puree":         categoryProduce,
		"Sweet Potato":          categoryProduce,
		"Spinach":               categoryProduce,
		"Peas":                  categoryProduce,
		"Zucchini":              categoryProduce,
		"Cranberries":           categoryProduce,
		"Eggshell Calcium":      categorySupplements,
		"Canine Vitamin Premix": categorySupplements,
		"Omega Fish Oil":        categorySupplements,
		"Kelp Powder":           categorySupplements,
	}

	return NewCatalog(batches, categories, categorySupplements, defaultPremixMembers)
}
