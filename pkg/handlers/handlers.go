package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finguard/risk-api/pkg/disposition"
	"github.com/finguard/risk-api/pkg/handlers/alerts"
	"github.com/finguard/risk-api/pkg/handlers/dashboard"
	"github.com/finguard/risk-api/pkg/handlers/transactions"
	ws "github.com/finguard/risk-api/pkg/handlers/websockets"
	"github.com/finguard/risk-api/pkg/insights"
	"github.com/finguard/risk-api/pkg/middleware"
	"github.com/finguard/risk-api/pkg/storage"
)

// Dependencies holds everything the HTTP API needs to serve requests.
type Dependencies struct {
	Store     storage.ApiStore
	Engine    *disposition.Engine
	Insights  *insights.Service
	WsHandler *ws.Handler
	JWTSecret []byte
	Logger    *slog.Logger
}

// NewRouter assembles the full API router: ambient middleware, the public
// health and metrics endpoints, and the authenticated API surface.
func NewRouter(deps Dependencies) chi.Router {
	txHandler := transactions.NewTransactionsHandler(deps.Store, deps.Engine)
	alertsHandler := alerts.NewAlertsHandler(deps.Store)
	dashboardHandler := dashboard.NewDashboardHandler(deps.Insights)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(deps.Logger))
	router.Use(middleware.Metrics)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	if deps.WsHandler != nil {
		router.Handle("/ws", deps.WsHandler)
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(deps.JWTSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", txHandler.ListTransactions)
			r.Get("/{transactionId}", withTransactionId(txHandler.GetTransactionById))
			r.Post("/{transactionId}/confirm", withTransactionId(txHandler.ConfirmSafe))
			r.Post("/{transactionId}/report-fraud", withTransactionId(txHandler.ReportFraud))
			r.Post("/{transactionId}/investigate", withTransactionId(txHandler.RequestInvestigation))
		})

		r.Get("/alerts", alertsHandler.ListAlerts)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.GetStats)
			r.Get("/risk-breakdown", dashboardHandler.GetRiskBreakdown)
			r.Get("/recent-transactions", dashboardHandler.GetRecentTransactions)
			r.Get("/recent-alerts", dashboardHandler.GetRecentAlerts)
		})
	})

	return router
}

// withTransactionId adapts a handler taking the path parameter explicitly.
func withTransactionId(fn func(w http.ResponseWriter, r *http.Request, transactionId string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "transactionId"))
	}
}
