package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-registration-service/internal/observability"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	views := h.Activities.ListActivities(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName := chi.URLParam(r, "activity")
	if err := ValidateActivityParam(activityName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Enroll(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	observability.RecordSignup(activityName)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	activityName := chi.URLParam(r, "activity")
	if err := ValidateActivityParam(activityName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Withdraw(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	observability.RecordUnregister(activityName)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
