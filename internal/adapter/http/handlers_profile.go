package adapthttp

import (
	"net/http"

	"fitstats/internal/app"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		view, err := s.svc.Profile.Get(ctx, user.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case http.MethodPost, http.MethodPut:
		var body struct {
			Age           int      `json:"age"`
			Gender        string   `json:"gender"`
			Height        float64  `json:"height"`
			Weight        float64  `json:"weight"`
			GoalWeight    *float64 `json:"goalWeight"`
			GoalType      string   `json:"goalType"`
			ActivityLevel float64  `json:"activityLevel"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		view, err := s.svc.Profile.Save(ctx, user.ID, app.ProfileInput{
			Age:           body.Age,
			Gender:        body.Gender,
			HeightCm:      body.Height,
			WeightKg:      body.Weight,
			GoalWeight:    body.GoalWeight,
			GoalType:      body.GoalType,
			ActivityLevel: body.ActivityLevel,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
