package mock

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"barkery/models"
)

func TestNewSeedsRepresentativeData(t *testing.T) {
	db, err := New(context.Background())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	counts := []struct {
		name  string
		model any
		want  int64
	}{
		{"users", &models.User{}, 4},
		{"recipes", &models.Recipe{}, 3},
		{"dogs", &models.Dog{}, 3},
		{"plans", &models.Plan{}, 3},
		{"plan items", &models.PlanItem{}, 5},
	}
	for _, tc := range counts {
		var got int64
		if err := db.Model(tc.model).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("expected %d %s, got %d", tc.want, tc.name, got)
		}
	}

	var admin models.User
	if err := db.Where("email = ?", "morgan@barkery.app").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("expected seeded admin to have the admin flag")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("kitchen")); err != nil {
		t.Errorf("seeded admin password does not verify: %v", err)
	}

	var productionCustomers int64
	if err := db.Model(&models.User{}).Where("is_production_customer = ?", true).Count(&productionCustomers).Error; err != nil {
		t.Fatalf("count production customers: %v", err)
	}
	if productionCustomers != 2 {
		t.Errorf("expected 2 production customers, got %d", productionCustomers)
	}

	var items []models.PlanItem
	if err := db.Preload("Recipe").Preload("Dog").Find(&items).Error; err != nil {
		t.Fatalf("load plan items: %v", err)
	}
	for _, item := range items {
		if item.RecipeID == nil || item.DogID == nil {
			t.Errorf("seeded plan item %d missing references", item.ID)
		}
		if item.SizeG <= 0 || item.Qty <= 0 {
			t.Errorf("seeded plan item %d has invalid demand: qty=%d size=%v", item.ID, item.Qty, item.SizeG)
		}
	}
}
