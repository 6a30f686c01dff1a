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

func TestContractHandler_GenerateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body defaults the type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/contracts", h.GenerateContract)

		generatedAt := time.Now().UTC()
		uc.EXPECT().Generate(gomock.Any(), "deal-1", entities.ContractType("")).
			Return(entities.Contract{
				ID:          "c1",
				DealID:      "deal-1",
				Type:        entities.ContractTypePurchaseAgreement,
				Status:      entities.ContractStatusGenerated,
				GeneratedAt: &generatedAt,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/contracts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["type"] != "PURCHASE_AGREEMENT" || body["status"] != "GENERATED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("explicit type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/contracts", h.GenerateContract)

		uc.EXPECT().Generate(gomock.Any(), "deal-1", entities.ContractTypeAssignment).
			Return(entities.Contract{ID: "c2", DealID: "deal-1", Type: entities.ContractTypeAssignment, Status: entities.ContractStatusGenerated}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/contracts", bytes.NewBufferString(`{"type":"assignment"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid type returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/deals/:deal_id/contracts", h.GenerateContract)

		uc.EXPECT().Generate(gomock.Any(), "deal-1", entities.ContractType("LEASE")).
			Return(entities.Contract{}, usecase.ErrInvalidContractType)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/contracts", bytes.NewBufferString(`{"type":"LEASE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContractHandler_UpdateContractStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signing returns the signed contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:contract_id/status", h.UpdateContractStatus)

		signedAt := time.Now().UTC()
		uc.EXPECT().UpdateStatus(gomock.Any(), "c1", entities.ContractStatusSigned).
			Return(entities.Contract{ID: "c1", Status: entities.ContractStatusSigned, SignedAt: &signedAt}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c1/status", bytes.NewBufferString(`{"status":"SIGNED"}`))
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
		if body["status"] != "SIGNED" || body["signed_at"] == nil {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:contract_id/status", h.UpdateContractStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.ContractStatusVoided).
			Return(entities.Contract{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/missing/status", bytes.NewBufferString(`{"status":"VOIDED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:contract_id/status", h.UpdateContractStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/c1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContractHandler_ListContractsByDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/deals/:deal_id/contracts", h.ListContractsByDeal)

		uc.EXPECT().ListByDeal(gomock.Any(), "deal-1").Return([]entities.Contract{
			{ID: "c1", DealID: "deal-1", Type: entities.ContractTypePurchaseAgreement, Status: entities.ContractStatusSigned},
			{ID: "c2", DealID: "deal-1", Type: entities.ContractTypeAmendment, Status: entities.ContractStatusGenerated},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/deal-1/contracts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[1]["type"] != "AMENDMENT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
