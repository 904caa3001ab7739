package adapthttp

import (
	"net/http"
	"time"

	"fitstats/internal/app"
)

func (s *Server) handleWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Workouts.ListRecent(r.Context(), user.ID, intQuery(r, "limit", 20))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Name      string     `json:"name"`
			Duration  *int       `json:"duration"`
			Completed *bool      `json:"completed"`
			Notes     string     `json:"notes"`
			Date      *time.Time `json:"date"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		session, err := s.svc.Workouts.LogSession(r.Context(), user.ID, app.WorkoutInput(body))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, session)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWorkoutLogsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	day, err := s.svc.Stats.TodayWorkouts(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
