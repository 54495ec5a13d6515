package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"obralink/internal/adapter/http/handlers/mocks"
	"obralink/internal/adapter/http/middleware"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().SubmitQuote(gomock.Any(), "user-2", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrDuplicateQuote)

		r := gin.New()
		r.POST("/v1/quotes", func(c *gin.Context) {
			c.Set(middleware.ContextUserID, "user-2")
			h.SubmitQuote(c)
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"service_id":"serv-1","price":3500,"lead_time_days":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().SubmitQuote(gomock.Any(), "user-2", gomock.Any()).
			Return(entities.Quote{ID: "quot-1", ServiceID: "serv-1", ProviderID: "user-2", Price: 3500}, nil)

		r := gin.New()
		r.POST("/v1/quotes", func(c *gin.Context) {
			c.Set(middleware.ContextUserID, "user-2")
			h.SubmitQuote(c)
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"service_id":"serv-1","price":3500,"lead_time_days":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_CompareQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to price ranking and flags best prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		best := 3500.0
		uc.EXPECT().Compare(gomock.Any(), "serv-1", entities.SortByPrice).Return(usecase.Comparison{
			Quotes: []entities.Quote{
				{ID: "quot-1", ServiceID: "serv-1", Price: 3500, LeadTimeDays: 5},
				{ID: "quot-2", ServiceID: "serv-1", Price: 4200, LeadTimeDays: 7},
			},
			BestPrice: &best,
		}, nil)

		r := gin.New()
		r.GET("/v1/services/:id/quotes", h.CompareQuotes)
		req := httptest.NewRequest(http.MethodGet, "/v1/services/serv-1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quotes []struct {
				ID          string  `json:"id"`
				Price       float64 `json:"price"`
				IsBestPrice bool    `json:"is_best_price"`
			} `json:"quotes"`
			BestPrice *float64 `json:"best_price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(body.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(body.Quotes))
		}
		if body.Quotes[0].ID != "quot-1" || !body.Quotes[0].IsBestPrice {
			t.Fatalf("expected quot-1 flagged best, got %+v", body.Quotes[0])
		}
		if body.Quotes[1].IsBestPrice {
			t.Fatalf("quot-2 must not be flagged best")
		}
		if body.BestPrice == nil || *body.BestPrice != 3500 {
			t.Fatalf("expected best price 3500, got %v", body.BestPrice)
		}
	})

	t.Run("sort=lead_time switches the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Compare(gomock.Any(), "serv-1", entities.SortByLeadTime).Return(usecase.Comparison{}, nil)

		r := gin.New()
		r.GET("/v1/services/:id/quotes", h.CompareQuotes)
		req := httptest.NewRequest(http.MethodGet, "/v1/services/serv-1/quotes?sort=lead_time", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no quotes yields empty list and null best price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Compare(gomock.Any(), "serv-2", entities.SortByPrice).Return(usecase.Comparison{}, nil)

		r := gin.New()
		r.GET("/v1/services/:id/quotes", h.CompareQuotes)
		req := httptest.NewRequest(http.MethodGet, "/v1/services/serv-2/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["best_price"] != nil {
			t.Fatalf("expected null best price, got %v", body["best_price"])
		}
	})
}
