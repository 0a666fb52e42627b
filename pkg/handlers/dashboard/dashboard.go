package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finguard/risk-api/pkg/api"
	"github.com/finguard/risk-api/pkg/insights"
	"github.com/finguard/risk-api/pkg/mapping"
	"github.com/finguard/risk-api/pkg/middleware"
	"github.com/finguard/risk-api/pkg/storage"
)

// DashboardHandler holds the dependencies for dashboard-related handlers.
type DashboardHandler struct {
	Insights *insights.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *insights.Service) *DashboardHandler {
	return &DashboardHandler{Insights: service}
}

// GetStats handles the logic for the dashboard summary block.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Insights.DashboardStats(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		writeInsightsError(w, err)
		return
	}

	respond(w, mapping.ToApiDashboardStats(stats))
}

// GetRiskBreakdown handles the logic for the per-risk-level counts.
func (h *DashboardHandler) GetRiskBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.Insights.RiskBreakdown(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		writeInsightsError(w, err)
		return
	}

	respond(w, mapping.ToApiRiskBreakdown(breakdown))
}

// GetRecentTransactions handles the logic for the recent-activity preview.
func (h *DashboardHandler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	domainTxs, err := h.Insights.RecentTransactions(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		writeInsightsError(w, err)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}
	respond(w, apiTxs)
}

// GetRecentAlerts handles the logic for the recent unresolved alerts preview.
func (h *DashboardHandler) GetRecentAlerts(w http.ResponseWriter, r *http.Request) {
	domainAlerts, err := h.Insights.RecentAlerts(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		writeInsightsError(w, err)
		return
	}

	apiAlerts := make([]*api.Alert, len(domainAlerts))
	for i, alert := range domainAlerts {
		apiAlerts[i] = mapping.ToApiAlert(&alert)
	}
	respond(w, apiAlerts)
}

func writeInsightsError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrMissingActor) {
		http.Error(w, "Missing authenticated user", http.StatusUnauthorized)
		return
	}
	http.Error(w, fmt.Sprintf("Failed to compute dashboard view: %v", err), http.StatusInternalServerError)
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
