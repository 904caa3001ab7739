package adapthttp

import (
	"net/http"
	"time"

	"fitstats/internal/app"
)

type weightBody struct {
	Weight   float64    `json:"weight"`
	BMI      *float64   `json:"bmi"`
	HeightCm float64    `json:"heightCm"`
	Note     string     `json:"note"`
	Date     *time.Time `json:"date"`
}

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		limit := intQuery(r, "limit", 14)
		items, err := s.svc.Weight.ListRecent(ctx, user.ID, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body weightBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		sample, err := s.svc.Weight.RecordWeight(ctx, user.ID, app.WeightInput(body))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, sample)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeightUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	deleted, err := s.svc.Weight.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}

func (s *Server) handleWeightByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sample, err := s.svc.Weight.Get(ctx, user.ID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sample)

	case http.MethodPut:
		var body weightBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		sample, err := s.svc.Weight.Update(ctx, user.ID, id, app.WeightInput(body))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sample)

	case http.MethodDelete:
		if err := s.svc.Weight.Delete(ctx, user.ID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
