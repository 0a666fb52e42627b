package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finguard_http_requests_total",
			Help: "Total number of HTTP requests processed, by method and status.",
		},
		[]string{"method", "status"},
	)

	dispositionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finguard_dispositions_total",
			Help: "Total number of transaction dispositions applied, by action.",
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(dispositionsTotal)
}

// Metrics counts every request by method and response status.
func Metrics(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
	}
	return http.HandlerFunc(fn)
}

// CountDisposition records one applied disposition for the given action.
func CountDisposition(action string) {
	dispositionsTotal.WithLabelValues(action).Inc()
}
