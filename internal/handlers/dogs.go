package handlers

import (
	"net/http"

	"barkery/internal/batchplan"
	applog "barkery/internal/log"
	"barkery/models"
)

type dogResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	WeightKg      float64 `json:"weight_kg"`
	WeightLbs     float64 `json:"weight_lbs"`
	ActivityLevel string  `json:"activity_level"`

	// Advisory figures from the body-weight formula; plan items carry the
	// authoritative biweekly amounts.
	AdvisoryDailyGrams    float64 `json:"advisory_daily_grams"`
	AdvisoryBiweeklyGrams float64 `json:"advisory_biweekly_grams"`
}

// DogResource lists dog profiles with advisory feeding amounts for
// production-planning visibility.
func DogResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "dog request without database")
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var dogs []models.Dog
	if err := database.WithContext(ctx).Order("name asc").Find(&dogs).Error; err != nil {
		applog.Error(ctx, "failed to list dogs", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load dogs")
		return
	}

	responses := make([]dogResponse, 0, len(dogs))
	for _, dog := range dogs {
		responses = append(responses, dogResponse{
			ID:                    dog.ID,
			Name:                  dog.Name,
			WeightKg:              dog.WeightKg,
			WeightLbs:             batchplan.KilogramsToPounds(dog.WeightKg),
			ActivityLevel:         dog.ActivityLevel,
			AdvisoryDailyGrams:    batchplan.DailyGrams(dog.WeightKg, dog.ActivityLevel),
			AdvisoryBiweeklyGrams: batchplan.BiweeklyGrams(dog.WeightKg, dog.ActivityLevel),
		})
	}

	writeJSON(w, http.StatusOK, responses)
}
