package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	applog "barkery/internal/log"
	"barkery/models"
)

type planItemRecipeSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type planItemDogSummary struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
}

type planItemResponse struct {
	ID        uint                   `json:"id"`
	PlanID    uint                   `json:"plan_id"`
	Qty       int                    `json:"qty"`
	SizeG     float64                `json:"size_g"`
	Recipe    *planItemRecipeSummary `json:"recipe,omitempty"`
	Dog       *planItemDogSummary    `json:"dog,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// PlanItemResource lists plan item rows for the back office, optionally
// narrowed to one plan via the `plan_id` query parameter.
func PlanItemResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "plan item request without database")
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var items []models.PlanItem

	query := database.WithContext(ctx).
		Preload("Recipe").
		Preload("Dog").
		Order("plan_id asc, id asc")

	if planParam := strings.TrimSpace(r.URL.Query().Get("plan_id")); planParam != "" {
		if idValue, err := strconv.ParseUint(planParam, 10, 64); err == nil {
			query = query.Where("plan_id = ?", uint(idValue))
		}
	}

	if err := query.Find(&items).Error; err != nil {
		applog.Error(ctx, "failed to list plan items", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load plan items")
		return
	}

	responses := make([]planItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, projectPlanItem(item))
	}

	writeJSON(w, http.StatusOK, responses)
}

func projectPlanItem(item models.PlanItem) planItemResponse {
	response := planItemResponse{
		ID:        item.ID,
		PlanID:    item.PlanID,
		Qty:       item.Qty,
		SizeG:     item.SizeG,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	if item.Recipe != nil {
		response.Recipe = &planItemRecipeSummary{
			ID:   item.Recipe.ID,
			Name: item.Recipe.Name,
			Slug: item.Recipe.Slug,
		}
	}

	if item.Dog != nil {
		response.Dog = &planItemDogSummary{
			ID:            item.Dog.ID,
			Name:          item.Dog.Name,
			WeightKg:      item.Dog.WeightKg,
			ActivityLevel: item.Dog.ActivityLevel,
		}
	}

	return response
}
