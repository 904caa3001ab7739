package adapthttp

import (
	"net/http"
	"time"

	"fitstats/internal/app"
)

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Nutrition.ListRecent(r.Context(), user.ID, intQuery(r, "limit", 50))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			MealType string     `json:"mealType"`
			FoodName string     `json:"foodName"`
			Calories float64    `json:"calories"`
			Protein  *float64   `json:"protein"`
			Carbs    *float64   `json:"carbs"`
			Fat      *float64   `json:"fat"`
			Date     *time.Time `json:"date"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.svc.Nutrition.RecordEntry(r.Context(), user.ID, app.NutritionInput(body))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleNutritionToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	day, err := s.svc.Stats.TodayNutrition(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleNutritionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Nutrition.Delete(r.Context(), userFromContext(r).ID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
