package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

type stubOrderService struct {
	applyFn func(ctx context.Context, order domain.Order) (*domain.Receipt, error)
}

func (s *stubOrderService) Apply(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
	return s.applyFn(ctx, order)
}

func TestOrderHandler_Create_MapsCart(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		applyFn: func(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
			if order.PaymentMethod != domain.PaymentCOD {
				t.Fatalf("unexpected payment method: %s", order.PaymentMethod)
			}
			if len(order.Cart) != 2 || order.Cart[0].ProductID != "pen-1" || order.Cart[0].Quantity != 3 {
				t.Fatalf("unexpected cart: %+v", order.Cart)
			}
			return &domain.Receipt{StockUpdated: true, LinesApplied: 1, LinesSkipped: 1}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := `{"paymentMethod":"COD","cart":[{"id":"pen-1","quantity":3},{"id":"ghost","quantity":1}]}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/orders", body), rec)
	serve(e, handler.Create, c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Order processed successfully" || !resp.StockUpdated {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOrderHandler_Create_PendingStillOK(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		applyFn: func(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
			return &domain.Receipt{}, nil
		},
	}
	handler := NewOrderHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/orders", `{"paymentMethod":"Pending","cart":[]}`), rec)
	serve(e, handler.Create, c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		applyFn: func(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/orders", `{"cart":"nope"}`), rec)
	serve(e, handler.Create, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_StringQuantityRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		applyFn: func(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := `{"paymentMethod":"COD","cart":[{"id":"pen-1","quantity":"3"}]}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/orders", body), rec)
	serve(e, handler.Create, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_StoreFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		applyFn: func(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
			return nil, errors.New("disk full")
		},
	}
	handler := NewOrderHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/orders", `{"paymentMethod":"Paid","cart":[]}`), rec)
	serve(e, handler.Create, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
