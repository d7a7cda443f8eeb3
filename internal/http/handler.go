package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-registration-service/internal/model"
	"activity-registration-service/internal/observability"
	"activity-registration-service/internal/service"
)

// ActivityService описывает контракт бизнес-слоя для HTTP-обработчиков.
type ActivityService interface {
	ListActivities(ctx context.Context) map[string]model.ActivityView
	Enroll(ctx context.Context, activityName, email string) (string, error)
	Withdraw(ctx context.Context, activityName, email string) (string, error)
}

// Handler связывает HTTP-маршруты с сервисом записи на кружки.
type Handler struct {
	Activities  ActivityService
	Log         *slog.Logger
	CORSOrigins []string
}

// NewHandler создаёт обработчик поверх сервиса кружков.
// corsOrigins — список разрешённых origin'ов для браузерного фронтенда.
func NewHandler(activities ActivityService, log *slog.Logger, corsOrigins []string) *Handler {
	return &Handler{
		Activities:  activities,
		Log:         log,
		CORSOrigins: corsOrigins,
	}
}

// Router собирает маршруты сервиса.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(observability.HTTPMetrics)

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activity}/signup", h.handleSignup)
		r.Delete("/{activity}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
