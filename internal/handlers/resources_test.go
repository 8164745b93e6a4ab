package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barkery/internal/batchplan"
	"barkery/models"
)

func TestDogResourceListsAdvisoryAmounts(t *testing.T) {
	db := withTestDatabase(t)

	dogs := []models.Dog{
		{Name: "Mochi", WeightKg: 8, ActivityLevel: "low"},
		{Name: "Biscuit", WeightKg: 24, ActivityLevel: "high"},
	}
	for i := range dogs {
		if err := db.Create(&dogs[i]).Error; err != nil {
			t.Fatalf("create dog: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/app/api/admin/dogs", nil)
	rec := httptest.NewRecorder()
	DogResource(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var listing []dogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing) != 2 {
		t.Fatalf("expected 2 dogs, got %d", len(listing))
	}
	if listing[0].Name != "Biscuit" {
		t.Fatalf("expected dogs sorted by name, got %q first", listing[0].Name)
	}

	// 24 kg at high activity eats 3% of body weight per day.
	if listing[0].AdvisoryDailyGrams != 720 {
		t.Errorf("expected 720 advisory daily grams, got %v", listing[0].AdvisoryDailyGrams)
	}
	if listing[0].AdvisoryBiweeklyGrams != 10080 {
		t.Errorf("expected 10080 advisory biweekly grams, got %v", listing[0].AdvisoryBiweeklyGrams)
	}
	if listing[0].WeightLbs != batchplan.KilogramsToPounds(24) {
		t.Errorf("unexpected weight conversion: %v", listing[0].WeightLbs)
	}
}

func TestDogResourceRejectsNonGet(t *testing.T) {
	withTestDatabase(t)

	req := httptest.NewRequest(http.MethodPost, "/app/api/admin/dogs", nil)
	rec := httptest.NewRecorder()
	DogResource(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestPlanItemResourceFiltersByPlan(t *testing.T) {
	db := withTestDatabase(t)

	recipe := models.Recipe{Name: "Beef & Quinoa", Slug: "beef-quinoa"}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	dog := models.Dog{Name: "Biscuit", WeightKg: 24, ActivityLevel: "high"}
	if err := db.Create(&dog).Error; err != nil {
		t.Fatalf("create dog: %v", err)
	}

	owner := models.User{Email: "harper@example.com", FullName: "Harper Lane", PasswordHash: "x"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	planA := models.Plan{UserID: owner.ID, Status: models.PlanStatusActive}
	planB := models.Plan{UserID: owner.ID, Status: models.PlanStatusActive}
	for _, plan := range []*models.Plan{&planA, &planB} {
		if err := db.Create(plan).Error; err != nil {
			t.Fatalf("create plan: %v", err)
		}
	}

	items := []models.PlanItem{
		{PlanID: planA.ID, RecipeID: &recipe.ID, DogID: &dog.ID, Qty: 1, SizeG: 2000},
		{PlanID: planB.ID, RecipeID: &recipe.ID, DogID: &dog.ID, Qty: 2, SizeG: 1500},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("create plan item: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/app/api/admin/plan-items?plan_id=%d", planB.ID), nil)
	rec := httptest.NewRecorder()
	PlanItemResource(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var listing []planItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing) != 1 {
		t.Fatalf("expected 1 item for plan filter, got %d", len(listing))
	}
	item := listing[0]
	if item.PlanID != planB.ID || item.Qty != 2 || item.SizeG != 1500 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Recipe == nil || item.Recipe.Name != "Beef & Quinoa" {
		t.Fatalf("expected recipe summary preloaded, got %+v", item.Recipe)
	}
	if item.Dog == nil || item.Dog.Name != "Biscuit" {
		t.Fatalf("expected dog summary preloaded, got %+v", item.Dog)
	}
}

func TestBatchScheduleResourceListAndPointLookup(t *testing.T) {
	db := withTestDatabase(t)

	first := models.BatchSchedule{
		BatchDate:          batchplan.AtNoonUTC(time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC)),
		Status:             "upcoming",
		RecipesPlanned:     []byte(`[]`),
		IngredientsPlanned: []byte(`[]`),
		TotalPacks:         6,
		TotalBatches:       1,
	}
	second := models.BatchSchedule{
		BatchDate:          batchplan.AtNoonUTC(time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)),
		Status:             "upcoming",
		RecipesPlanned:     []byte(`[]`),
		IngredientsPlanned: []byte(`[]`),
		TotalPacks:         12,
		TotalBatches:       2,
	}
	for _, schedule := range []*models.BatchSchedule{&first, &second} {
		if err := db.Create(schedule).Error; err != nil {
			t.Fatalf("create schedule: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/app/api/admin/batch-schedules", nil)
	rec := httptest.NewRecorder()
	BatchScheduleResource(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var listing []batchScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(listing))
	}
	if listing[0].BatchDate != "2026-02-05" || listing[1].BatchDate != "2026-01-22" {
		t.Fatalf("expected newest cook date first, got %q then %q", listing[0].BatchDate, listing[1].BatchDate)
	}

	req = httptest.NewRequest(http.MethodGet, "/app/api/admin/batch-schedules?date=2026-01-22", nil)
	rec = httptest.NewRecorder()
	BatchScheduleResource(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for point lookup, got %d", rec.Code)
	}

	var single batchScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &single); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if single.TotalPacks != 6 || single.TotalBatches != 1 {
		t.Fatalf("unexpected schedule: %+v", single)
	}
}

func TestBatchScheduleResourcePointLookupMissing(t *testing.T) {
	withTestDatabase(t)

	req := httptest.NewRequest(http.MethodGet, "/app/api/admin/batch-schedules?date=2030-01-01", nil)
	rec := httptest.NewRecorder()
	BatchScheduleResource(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown date, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/app/api/admin/batch-schedules?date=not-a-date", nil)
	rec = httptest.NewRecorder()
	BatchScheduleResource(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}
}
