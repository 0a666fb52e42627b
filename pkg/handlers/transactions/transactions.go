package transactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/finguard/risk-api/pkg/api"
	"github.com/finguard/risk-api/pkg/disposition"
	"github.com/finguard/risk-api/pkg/filter"
	"github.com/finguard/risk-api/pkg/mapping"
	"github.com/finguard/risk-api/pkg/middleware"
	"github.com/finguard/risk-api/pkg/storage"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Store  storage.TransactionReader
	Engine *disposition.Engine
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionReader, engine *disposition.Engine) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Engine: engine}
}

// ListTransactions handles the logic for retrieving the caller's transactions,
// optionally narrowed by a search query and a risk level.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if actor == "" {
		http.Error(w, "Missing authenticated user", http.StatusUnauthorized)
		return
	}

	limit := int32(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	domainTxs, err := h.Store.ListTransactionsByUserID(r.Context(), actor, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	domainTxs = filter.Apply(domainTxs, r.URL.Query().Get("q"), r.URL.Query().Get("risk"))

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetTransactionById handles the logic for retrieving a transaction by its ID.
// Transactions belonging to another user are indistinguishable from missing ones.
func (h *TransactionsHandler) GetTransactionById(w http.ResponseWriter, r *http.Request, transactionId string) {
	actor := middleware.ActorFromContext(r.Context())
	if actor == "" {
		http.Error(w, "Missing authenticated user", http.StatusUnauthorized)
		return
	}

	domainTx, err := h.Store.GetTransaction(r.Context(), transactionId)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve transaction: %v", err), http.StatusInternalServerError)
		return
	}

	if domainTx.UserId != actor {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	apiTx := mapping.ToApiTransaction(domainTx)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTx); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ConfirmSafe handles the logic for confirming a transaction as safe.
func (h *TransactionsHandler) ConfirmSafe(w http.ResponseWriter, r *http.Request, transactionId string) {
	h.applyDisposition(w, r, transactionId, "confirm_safe", h.Engine.ConfirmSafe)
}

// ReportFraud handles the logic for reporting a transaction as fraudulent.
func (h *TransactionsHandler) ReportFraud(w http.ResponseWriter, r *http.Request, transactionId string) {
	h.applyDisposition(w, r, transactionId, "report_fraud", h.Engine.ReportFraud)
}

// RequestInvestigation handles the logic for flagging a transaction for review.
func (h *TransactionsHandler) RequestInvestigation(w http.ResponseWriter, r *http.Request, transactionId string) {
	h.applyDisposition(w, r, transactionId, "request_investigation", h.Engine.RequestInvestigation)
}

func (h *TransactionsHandler) applyDisposition(w http.ResponseWriter, r *http.Request, transactionId, action string, apply disposition.Func) {
	actor := middleware.ActorFromContext(r.Context())

	domainTx, err := apply(r.Context(), transactionId, actor)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrMissingActor):
			http.Error(w, "Missing authenticated user", http.StatusUnauthorized)
		case errors.Is(err, storage.ErrTransactionNotFound):
			http.Error(w, "Transaction not found", http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to apply disposition: %v", err), http.StatusInternalServerError)
		}
		return
	}

	middleware.CountDisposition(action)

	apiTx := mapping.ToApiTransaction(domainTx)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTx); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
