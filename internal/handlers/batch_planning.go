package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"barkery/internal/batchplan"
	applog "barkery/internal/log"
	"barkery/models"
)

const batchDateLayout = "2006-01-02"

// Customer filter modes for the read path.
const (
	filterAll        = "all"
	filterProduction = "production"
	filterTest       = "test"
)

var errInvalidFilter = errors.New("batch planning: invalid customer filter")

var planDemandStatuses = []string{
	models.PlanStatusActive,
	models.PlanStatusPurchased,
	models.PlanStatusInProgress,
}

type batchPlanResponse struct {
	BatchDate               string                             `json:"batch_date"`
	OrderByDate             string                             `json:"order_by_date"`
	DeliveryByDate          string                             `json:"delivery_by_date"`
	RecipeRequirements      []batchplan.RecipeRequirement      `json:"recipe_requirements"`
	ConsolidatedIngredients []batchplan.ConsolidatedIngredient `json:"consolidated_ingredients"`
	DogSubscriptions        []batchplan.DogSubscription        `json:"dog_subscriptions"`
	TotalPacks              int                                `json:"total_packs"`
	TotalBatches            int                                `json:"total_batches"`
	Warnings                []string                           `json:"warnings"`
}

// BatchPlanningResource serves the admin batch-planning endpoint: GET
// computes the production plan for a cook date from live plan items, POST
// saves the plan as a batch schedule record.
func BatchPlanningResource(w http.ResponseWriter, r *http.Request) {
	if database == nil || planner == nil {
		applog.Debug(r.Context(), "batch planning request without dependencies")
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	switch r.Method {
	case http.MethodGet:
		getBatchPlan(w, r)
	case http.MethodPost:
		saveBatchSchedule(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func getBatchPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchDate, err := resolveBatchDate(r.URL.Query().Get("date"))
	if err != nil {
		applog.Debug(ctx, "invalid batch date parameter", "error", err)
		writeJSONError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	filter, err := resolveCustomerFilter(r.URL.Query().Get("filter"))
	if err != nil {
		applog.Debug(ctx, "invalid customer filter parameter", "filter", r.URL.Query().Get("filter"))
		writeJSONError(w, http.StatusBadRequest, "filter must be one of production, test, all")
		return
	}

	var plans []models.Plan
	if err := database.WithContext(ctx).
		Where("status IN ?", planDemandStatuses).
		Find(&plans).Error; err != nil {
		applog.Error(ctx, "failed to load plans", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load plans")
		return
	}

	usersByID, err := loadPlanOwners(ctx, plans)
	if err != nil {
		applog.Error(ctx, "failed to load plan owners", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load customer profiles")
		return
	}

	filtered := filterPlansByCustomer(plans, usersByID, filter)
	if len(filtered) == 0 {
		applog.Info(ctx, "no plans match customer filter", "filter", filter, "batchDate", batchDate.Format(batchDateLayout))
		plan := planner.Build(batchDate, nil, nil, scheduler)
		writeJSON(w, http.StatusOK, projectBatchPlan(plan))
		return
	}

	planIDs := make([]uint, 0, len(filtered))
	customers := make(map[uint]batchplan.Customer, len(filtered))
	for _, plan := range filtered {
		planIDs = append(planIDs, plan.ID)
		if owner, ok := usersByID[plan.UserID]; ok {
			customers[plan.ID] = batchplan.Customer{
				Email:    owner.Email,
				FullName: owner.FullName,
			}
		}
	}

	var rows []models.PlanItem
	if err := database.WithContext(ctx).
		Preload("Recipe").
		Preload("Dog").
		Where("plan_id IN ?", planIDs).
		Find(&rows).Error; err != nil {
		applog.Error(ctx, "failed to load plan items", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load plan items")
		return
	}

	items := make([]batchplan.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, planItemToInput(row))
	}

	plan := planner.Build(batchDate, items, customers, scheduler)
	for _, warning := range plan.Warnings {
		applog.Warn(ctx, "batch plan configuration gap", "warning", warning)
	}

	writeJSON(w, http.StatusOK, projectBatchPlan(plan))
}

type batchScheduleRequest struct {
	BatchDate               string                             `json:"batch_date"`
	RecipeRequirements      []batchplan.RecipeRequirement      `json:"recipe_requirements"`
	ConsolidatedIngredients []batchplan.ConsolidatedIngredient `json:"consolidated_ingredients"`
	TotalPacks              int                                `json:"total_packs"`
	TotalBatches            int                                `json:"total_batches"`
	Notes                   string                             `json:"notes"`
}

func saveBatchSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload batchScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid batch schedule payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	parsed, err := time.Parse(batchDateLayout, strings.TrimSpace(payload.BatchDate))
	if err != nil {
		applog.Debug(ctx, "invalid batch schedule date", "value", payload.BatchDate, "error", err)
		writeJSONError(w, http.StatusBadRequest, "batch_date must be formatted YYYY-MM-DD")
		return
	}
	batchDate := batchplan.AtNoonUTC(parsed)

	recipesPlanned, err := json.Marshal(payload.RecipeRequirements)
	if err != nil {
		applog.Error(ctx, "failed to marshal planned recipes", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to save batch schedule")
		return
	}
	ingredientsPlanned, err := json.Marshal(payload.ConsolidatedIngredients)
	if err != nil {
		applog.Error(ctx, "failed to marshal planned ingredients", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to save batch schedule")
		return
	}

	var schedule models.BatchSchedule
	err = database.WithContext(ctx).Where("batch_date = ?", batchDate).First(&schedule).Error
	switch {
	case err == nil:
		// Saved plans are replaced wholesale; there is no partial-field merge.
		updates := map[string]any{
			"recipes_planned":     datatypes.JSON(recipesPlanned),
			"ingredients_planned": datatypes.JSON(ingredientsPlanned),
			"notes":               payload.Notes,
			"total_packs":         payload.TotalPacks,
			"total_batches":       payload.TotalBatches,
		}
		if err := database.WithContext(ctx).Model(&schedule).Updates(updates).Error; err != nil {
			applog.Error(ctx, "failed to update batch schedule", "error", err, "batchDate", payload.BatchDate)
			writeJSONError(w, http.StatusInternalServerError, "unable to save batch schedule")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		schedule = models.BatchSchedule{
			BatchDate:          batchDate,
			Status:             "upcoming",
			Notes:              payload.Notes,
			RecipesPlanned:     datatypes.JSON(recipesPlanned),
			IngredientsPlanned: datatypes.JSON(ingredientsPlanned),
			TotalPacks:         payload.TotalPacks,
			TotalBatches:       payload.TotalBatches,
		}
		if err := database.WithContext(ctx).Create(&schedule).Error; err != nil {
			applog.Error(ctx, "failed to create batch schedule", "error", err, "batchDate", payload.BatchDate)
			writeJSONError(w, http.StatusInternalServerError, "unable to save batch schedule")
			return
		}
	default:
		applog.Error(ctx, "failed to look up batch schedule", "error", err, "batchDate", payload.BatchDate)
		writeJSONError(w, http.StatusInternalServerError, "unable to save batch schedule")
		return
	}

	if err := database.WithContext(ctx).First(&schedule, schedule.ID).Error; err != nil {
		applog.Error(ctx, "failed to reload batch schedule", "error", err, "id", schedule.ID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load batch schedule")
		return
	}

	writeJSON(w, http.StatusOK, projectBatchSchedule(schedule))
}

func resolveBatchDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return scheduler.NextCookDate(time.Now()), nil
	}
	parsed, err := time.Parse(batchDateLayout, trimmed)
	if err != nil {
		return time.Time{}, err
	}
	return batchplan.AtNoonUTC(parsed), nil
}

func resolveCustomerFilter(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", filterAll:
		return filterAll, nil
	case filterProduction:
		return filterProduction, nil
	case filterTest:
		return filterTest, nil
	default:
		return "", errInvalidFilter
	}
}

func loadPlanOwners(ctx context.Context, plans []models.Plan) (map[uint]models.User, error) {
	if len(plans) == 0 {
		return map[uint]models.User{}, nil
	}

	seen := make(map[uint]struct{}, len(plans))
	userIDs := make([]uint, 0, len(plans))
	for _, plan := range plans {
		if _, ok := seen[plan.UserID]; ok {
			continue
		}
		seen[plan.UserID] = struct{}{}
		userIDs = append(userIDs, plan.UserID)
	}

	var users []models.User
	if err := database.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func filterPlansByCustomer(plans []models.Plan, usersByID map[uint]models.User, filter string) []models.Plan {
	if filter == filterAll {
		return plans
	}

	filtered := make([]models.Plan, 0, len(plans))
	for _, plan := range plans {
		owner, ok := usersByID[plan.UserID]
		production := ok && owner.IsProductionCustomer
		if (filter == filterProduction && production) || (filter == filterTest && !production) {
			filtered = append(filtered, plan)
		}
	}
	return filtered
}

func planItemToInput(row models.PlanItem) batchplan.Item {
	item := batchplan.Item{
		PlanID: row.PlanID,
		Qty:    row.Qty,
		SizeG:  row.SizeG,
	}
	if row.Recipe != nil {
		item.Recipe = row.Recipe.Name
	}
	if row.Dog != nil && row.DogID != nil {
		item.DogID = *row.DogID
		item.DogName = row.Dog.Name
		item.DogWeightKg = row.Dog.WeightKg
		item.ActivityLevel = row.Dog.ActivityLevel
	}
	return item
}

func projectBatchPlan(plan batchplan.Plan) batchPlanResponse {
	return batchPlanResponse{
		BatchDate:               plan.BatchDate.Format(batchDateLayout),
		OrderByDate:             plan.OrderByDate.Format(batchDateLayout),
		DeliveryByDate:          plan.DeliveryByDate.Format(batchDateLayout),
		RecipeRequirements:      plan.RecipeRequirements,
		ConsolidatedIngredients: plan.ConsolidatedIngredients,
		DogSubscriptions:        plan.DogSubscriptions,
		TotalPacks:              plan.TotalPacks,
		TotalBatches:            plan.TotalBatches,
		Warnings:                plan.Warnings,
	}
}
