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

func TestDealHandler_CreateDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.POST("/v1/deals", h.CreateDeal)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "123 Main St", entities.DealStatus("")).
			Return(entities.Deal{ID: "deal-1", Address: "123 Main St", Status: entities.DealStatusDraft, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals", bytes.NewBufferString(`{"address":"123 Main St"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "deal-1" || body["status"] != "DRAFT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.POST("/v1/deals", h.CreateDeal)

		uc.EXPECT().Create(gomock.Any(), "123 Main St", entities.DealStatus("ARCHIVED")).
			Return(entities.Deal{}, usecase.ErrInvalidDealStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals", bytes.NewBufferString(`{"address":"123 Main St","status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDealHandler_GetDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.GET("/v1/deals/:deal_id", h.GetDeal)

		uc.EXPECT().GetByID(gomock.Any(), "deal-1").
			Return(entities.Deal{ID: "deal-1", Status: entities.DealStatusUnderContract}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/deal-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.GET("/v1/deals/:deal_id", h.GetDeal)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Deal{}, usecase.ErrDealNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
