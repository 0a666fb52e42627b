package alerts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finguard/risk-api/pkg/api"
	"github.com/finguard/risk-api/pkg/middleware"
	"github.com/finguard/risk-api/pkg/models"
	storage_mocks "github.com/finguard/risk-api/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authenticatedRequest(target, actor string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(middleware.WithActor(req.Context(), actor))
}

func TestListAlerts(t *testing.T) {
	domainAlerts := []models.Alert{
		{
			Id:       uuid.New().String(),
			UserId:   "user1",
			Title:    "Fraud Reported",
			Severity: models.SeverityHigh,
			Status:   models.AlertUnresolved,
			Date:     time.Now(),
		},
	}

	t.Run("Success With Default Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewAlertsHandler(mockStorage)

		mockStorage.On("ListUnresolvedAlertsByUserID", mock.Anything, "user1", int32(20)).Return(domainAlerts, nil)

		rr := httptest.NewRecorder()
		handler.ListAlerts(rr, authenticatedRequest("/alerts", "user1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []api.Alert
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "Fraud Reported", got[0].Title)
		assert.Equal(t, api.AlertStatus("unresolved"), got[0].Status)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewAlertsHandler(mockStorage)

		mockStorage.On("ListUnresolvedAlertsByUserID", mock.Anything, "user1", int32(5)).Return(domainAlerts, nil)

		rr := httptest.NewRecorder()
		handler.ListAlerts(rr, authenticatedRequest("/alerts?limit=5", "user1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewAlertsHandler(mockStorage)

		rr := httptest.NewRecorder()
		handler.ListAlerts(rr, authenticatedRequest("/alerts?limit=-1", "user1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ListUnresolvedAlertsByUserID")
	})

	t.Run("Missing Actor", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewAlertsHandler(mockStorage)

		rr := httptest.NewRecorder()
		handler.ListAlerts(rr, httptest.NewRequest(http.MethodGet, "/alerts", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockStorage.AssertNotCalled(t, "ListUnresolvedAlertsByUserID")
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewAlertsHandler(mockStorage)

		mockStorage.On("ListUnresolvedAlertsByUserID", mock.Anything, "user1", int32(20)).Return(nil, errors.New("query failed"))

		rr := httptest.NewRecorder()
		handler.ListAlerts(rr, authenticatedRequest("/alerts", "user1"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
