package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "barkery/internal/log"
	"barkery/models"
)

// New returns an in-memory sqlite database seeded with representative
// subscription data so the back office can be exercised without Postgres.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:barkery-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Dog{},
		&models.Recipe{},
		&models.Plan{},
		&models.PlanItem{},
		&models.BatchSchedule{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("kitchen"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName:     "Morgan Reyes",
		Email:        "morgan@barkery.app",
		PasswordHash: string(password),
		IsAdmin:      true,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}

	harper := &models.User{
		FullName:             "Harper Lane",
		Email:                "harper@example.com",
		PasswordHash:         string(password),
		IsProductionCustomer: true,
	}
	quinn := &models.User{
		FullName:             "Quinn Okafor",
		Email:                "quinn@example.com",
		PasswordHash:         string(password),
		IsProductionCustomer: true,
	}
	tester := &models.User{
		FullName:     "Test Kitchen",
		Email:        "qa@barkery.app",
		PasswordHash: string(password),
	}
	for _, user := range []*models.User{harper, quinn, tester} {
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
	}

	beef := models.Recipe{Name: "Beef & Quinoa", Slug: "beef-quinoa"}
	chicken := models.Recipe{Name: "Chicken & Rice", Slug: "chicken-rice"}
	turkey := models.Recipe{Name: "Turkey & Pumpkin", Slug: "turkey-pumpkin"}
	for _, recipe := range []*models.Recipe{&beef, &chicken, &turkey} {
		if err := db.WithContext(ctx).Create(recipe).Error; err != nil {
			return err
		}
	}

	biscuit := models.Dog{Name: "Biscuit", WeightKg: 24, ActivityLevel: "high"}
	mochi := models.Dog{Name: "Mochi", WeightKg: 8, ActivityLevel: "low"}
	atlas := models.Dog{Name: "Atlas", WeightKg: 31, ActivityLevel: "moderate"}
	for _, dog := range []*models.Dog{&biscuit, &mochi, &atlas} {
		if err := db.WithContext(ctx).Create(dog).Error; err != nil {
			return err
		}
	}

	harperPlan := models.Plan{UserID: harper.ID, Status: models.PlanStatusActive}
	quinnPlan := models.Plan{UserID: quinn.ID, Status: models.PlanStatusPurchased}
	testPlan := models.Plan{UserID: tester.ID, Status: models.PlanStatusActive}
	for _, plan := range []*models.Plan{&harperPlan, &quinnPlan, &testPlan} {
		if err := db.WithContext(ctx).Create(plan).Error; err != nil {
			return err
		}
	}

	items := []models.PlanItem{
		{PlanID: harperPlan.ID, RecipeID: &beef.ID, DogID: &biscuit.ID, Qty: 1, SizeG: 10080},
		{PlanID: harperPlan.ID, RecipeID: &chicken.ID, DogID: &biscuit.ID, Qty: 1, SizeG: 3360},
		{PlanID: harperPlan.ID, RecipeID: &chicken.ID, DogID: &mochi.ID, Qty: 1, SizeG: 2240},
		{PlanID: quinnPlan.ID, RecipeID: &turkey.ID, DogID: &atlas.ID, Qty: 2, SizeG: 5425},
		{PlanID: testPlan.ID, RecipeID: &beef.ID, DogID: &atlas.ID, Qty: 1, SizeG: 4800},
	}

	for _, item := range items {
		itemCopy := item
		if err := db.WithContext(ctx).Create(&itemCopy).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
