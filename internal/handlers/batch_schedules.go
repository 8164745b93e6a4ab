package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"barkery/internal/batchplan"
	applog "barkery/internal/log"
	"barkery/models"
)

type batchScheduleResponse struct {
	ID                 uint            `json:"id"`
	BatchDate          string          `json:"batch_date"`
	Status             string          `json:"status"`
	Notes              string          `json:"notes"`
	RecipesPlanned     json.RawMessage `json:"recipes_planned"`
	IngredientsPlanned json.RawMessage `json:"ingredients_planned"`
	TotalPacks         int             `json:"total_packs"`
	TotalBatches       int             `json:"total_batches"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BatchScheduleResource lists saved batch schedules, newest cook date first.
// A `date` query parameter narrows the listing to a single schedule.
func BatchScheduleResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "batch schedule request without database")
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if dateParam := strings.TrimSpace(r.URL.Query().Get("date")); dateParam != "" {
		parsed, err := time.Parse(batchDateLayout, dateParam)
		if err != nil {
			applog.Debug(ctx, "invalid batch schedule date parameter", "value", dateParam, "error", err)
			writeJSONError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}

		var schedule models.BatchSchedule
		err = database.WithContext(ctx).
			Where("batch_date = ?", batchplan.AtNoonUTC(parsed)).
			First(&schedule).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(ctx, "failed to load batch schedule", "error", err, "date", dateParam)
			writeJSONError(w, http.StatusInternalServerError, "unable to load batch schedule")
			return
		}

		writeJSON(w, http.StatusOK, projectBatchSchedule(schedule))
		return
	}

	var schedules []models.BatchSchedule
	if err := database.WithContext(ctx).
		Order("batch_date desc").
		Find(&schedules).Error; err != nil {
		applog.Error(ctx, "failed to list batch schedules", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load batch schedules")
		return
	}

	responses := make([]batchScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, projectBatchSchedule(schedule))
	}

	writeJSON(w, http.StatusOK, responses)
}

func projectBatchSchedule(schedule models.BatchSchedule) batchScheduleResponse {
	return batchScheduleResponse{
		ID:                 schedule.ID,
		BatchDate:          schedule.BatchDate.Format(batchDateLayout),
		Status:             schedule.Status,
		Notes:              schedule.Notes,
		RecipesPlanned:     json.RawMessage(schedule.RecipesPlanned),
		IngredientsPlanned: json.RawMessage(schedule.IngredientsPlanned),
		TotalPacks:         schedule.TotalPacks,
		TotalBatches:       schedule.TotalBatches,
		CreatedAt:          schedule.CreatedAt,
		UpdatedAt:          schedule.UpdatedAt,
	}
}
