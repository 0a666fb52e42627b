package alerts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/finguard/risk-api/pkg/api"
	"github.com/finguard/risk-api/pkg/mapping"
	"github.com/finguard/risk-api/pkg/middleware"
	"github.com/finguard/risk-api/pkg/storage"
)

// defaultLimit bounds an alert listing when the caller does not ask for one.
const defaultLimit = int32(20)

// AlertsHandler holds the dependencies for alert-related handlers.
type AlertsHandler struct {
	Store storage.AlertReader
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(store storage.AlertReader) *AlertsHandler {
	return &AlertsHandler{Store: store}
}

// ListAlerts handles the logic for retrieving the caller's unresolved alerts,
// newest first.
func (h *AlertsHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if actor == "" {
		http.Error(w, "Missing authenticated user", http.StatusUnauthorized)
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	domainAlerts, err := h.Store.ListUnresolvedAlertsByUserID(r.Context(), actor, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve alerts: %v", err), http.StatusInternalServerError)
		return
	}

	apiAlerts := make([]*api.Alert, len(domainAlerts))
	for i, alert := range domainAlerts {
		apiAlerts[i] = mapping.ToApiAlert(&alert)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAlerts); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
