// Package observability содержит Prometheus-метрики сервиса.
package observability

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Successful signups by activity.",
	}, []string{"activity"})

	unregistersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "registry",
		Name:      "unregisters_total",
		Help:      "Successful unregistrations by activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, signupsTotal, unregistersTotal)
}

// HTTPMetrics — middleware, считающее запросы по маршруту и статусу ответа.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
	})
}

// RecordSignup инкрементирует счётчик успешных записей на кружок.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordUnregister инкрементирует счётчик успешных отписок от кружка.
func RecordUnregister(activity string) {
	unregistersTotal.WithLabelValues(activity).Inc()
}
