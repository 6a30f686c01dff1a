package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealflow/internal/adapter/http/handlers/mocks"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTransactionHandler_GetStepsByDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/deals/:deal_id/steps", h.GetStepsByDeal)

		now := time.Now().UTC()
		uc.EXPECT().GetStepsByDeal(gomock.Any(), "deal-1").Return([]entities.TransactionStep{
			{ID: "s1", DealID: "deal-1", Label: "Offer Accepted", Order: 1, Status: entities.StepStatusComplete, AssignedTo: entities.StepAssigneeSystem, CompletedAt: &now},
			{ID: "s2", DealID: "deal-1", Label: "Earnest Money Deposited", Order: 2, Status: entities.StepStatusPending, AssignedTo: entities.StepAssigneeInvestor},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/deal-1/steps", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0]["label"] != "Offer Accepted" || body[0]["assigned_to"] != "SYSTEM" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid deal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/deals/:deal_id/steps", h.GetStepsByDeal)

		uc.EXPECT().GetStepsByDeal(gomock.Any(), " ").Return(nil, usecase.ErrInvalidDealID)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/%20/steps", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_UpdateStepStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/steps/:step_id/status", h.UpdateStepStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/steps/s1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/steps/:step_id/status", h.UpdateStepStatus)

		uc.EXPECT().UpdateStepStatus(gomock.Any(), "missing", entities.StepStatusComplete).
			Return(entities.TransactionStep{}, usecase.ErrStepNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/steps/missing/status", bytes.NewBufferString(`{"status":"COMPLETE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success normalizes status case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/steps/:step_id/status", h.UpdateStepStatus)

		now := time.Now().UTC()
		uc.EXPECT().UpdateStepStatus(gomock.Any(), "s1", entities.StepStatusComplete).
			Return(entities.TransactionStep{ID: "s1", Status: entities.StepStatusComplete, CompletedAt: &now}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/steps/s1/status", bytes.NewBufferString(`{"status":"complete"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_CloseDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete steps returns 409 with labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/close", h.CloseDeal)

		uc.EXPECT().CloseDeal(gomock.Any(), "deal-1").
			Return(entities.Deal{}, &usecase.IncompleteStepsError{Labels: []string{"Appraisal", "Final Walkthrough"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INCOMPLETE_STEPS" {
			t.Fatalf("unexpected code: %v", body)
		}
		details, ok := body["details"].([]any)
		if !ok || len(details) != 2 || details[0] != "Appraisal" {
			t.Fatalf("expected offending labels in details: %v", body)
		}
	})

	t.Run("unsigned contract returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/close", h.CloseDeal)

		uc.EXPECT().CloseDeal(gomock.Any(), "deal-1").Return(entities.Deal{}, usecase.ErrNoSignedContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/close", h.CloseDeal)

		uc.EXPECT().CloseDeal(gomock.Any(), "deal-1").
			Return(entities.Deal{ID: "deal-1", Status: entities.DealStatusClosed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "CLOSED" {
			t.Fatalf("expected CLOSED status, got %v", body)
		}
	})
}

func TestTransactionHandler_DepositEarnestMoney(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("declined returns 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		deposits := mocks.NewMockIEarnestDepositUseCase(ctrl)
		h := NewTransactionHandler(uc, deposits)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/earnest-deposit", h.DepositEarnestMoney)

		deposits.EXPECT().Deposit(gomock.Any(), "deal-1", gomock.Any()).
			Return(usecase.EarnestDepositReceipt{}, usecase.ErrPaymentDeclined)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/earnest-deposit", bytes.NewBufferString(`{"transaction_amount":5000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		deposits := mocks.NewMockIEarnestDepositUseCase(ctrl)
		h := NewTransactionHandler(uc, deposits)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/earnest-deposit", h.DepositEarnestMoney)

		deposits.EXPECT().Deposit(gomock.Any(), "deal-1", gomock.Any()).Return(usecase.EarnestDepositReceipt{
			Step:              entities.TransactionStep{ID: "s2", Status: entities.StepStatusComplete},
			ProviderPaymentID: "p1",
			ProviderStatus:    "approved",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/earnest-deposit", bytes.NewBufferString(`{"transaction_amount":5000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["provider_payment_id"] != "p1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
