package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"convsvc/internal/rates"
	"convsvc/internal/service"
)

func TestHandleConvert(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 15, 30, 0, time.UTC)

	t.Run("valid request returns result", func(t *testing.T) {
		svc := &mockConversionService{
			convertFunc: func(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error) {
				return &service.ConversionResult{
					ID: "conv-1", From: "USD", To: "EUR",
					Amount: 100, Rate: 0.92, Result: 92, ConvertedAt: now,
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/convert?from=USD&to=EUR&amount=100", nil)
		w := httptest.NewRecorder()

		HandleConvert(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp ConversionResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Result != 92 || resp.Rate != 0.92 {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.ConvertedAt != "2026-08-01T10:15:30Z" {
			t.Errorf("expected RFC3339 timestamp, got %s", resp.ConvertedAt)
		}
	})

	t.Run("missing params return 400", func(t *testing.T) {
		svc := &mockConversionService{}

		req := httptest.NewRequest(http.MethodGet, "/convert?from=USD", nil)
		w := httptest.NewRecorder()

		HandleConvert(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("non-numeric amount returns 400", func(t *testing.T) {
		svc := &mockConversionService{}

		req := httptest.NewRequest(http.MethodGet, "/convert?from=USD&to=EUR&amount=abc", nil)
		w := httptest.NewRecorder()

		HandleConvert(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("negative amount returns 400", func(t *testing.T) {
		svc := &mockConversionService{
			convertFunc: func(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error) {
				return nil, rates.ErrNegativeAmount
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/convert?from=USD&to=EUR&amount=-5", nil)
		w := httptest.NewRecorder()

		HandleConvert(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("unsupported currency returns 400 naming the code", func(t *testing.T) {
		svc := &mockConversionService{
			convertFunc: func(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error) {
				return nil, &rates.UnsupportedCurrencyError{Codes: []string{"ZZZ"}}
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/convert?from=ZZZ&to=EUR&amount=1", nil)
		w := httptest.NewRecorder()

		HandleConvert(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Error != "unsupported currency code(s): ZZZ" {
			t.Errorf("unexpected error message: %q", resp.Error)
		}
	})
}

func TestHandleListCurrencies(t *testing.T) {
	svc := &mockConversionService{
		listCurrenciesFunc: func(ctx context.Context) []service.CurrencyInfo {
			return []service.CurrencyInfo{
				{Code: "EUR", Name: "Euro", Symbol: "€"},
				{Code: "USD", Name: "US Dollar", Symbol: "$"},
			}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	w := httptest.NewRecorder()

	HandleListCurrencies(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp []CurrencyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].Code != "EUR" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleRegisterCurrency(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		svc := &mockConversionService{
			registerCurrencyFunc: func(ctx context.Context, code string, rateVsBase float64, name, symbol string) error {
				if code != "CHF" || rateVsBase != 0.88 {
					t.Errorf("unexpected registration: %s %v", code, rateVsBase)
				}
				return nil
			},
		}

		body := bytes.NewBufferString(`{"code":"CHF","rate_vs_base":0.88,"name":"Swiss Franc","symbol":"CHF"}`)
		req := httptest.NewRequest(http.MethodPost, "/currencies", body)
		w := httptest.NewRecorder()

		HandleRegisterCurrency(svc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", w.Code)
		}
	})

	t.Run("non-positive rate returns 400", func(t *testing.T) {
		svc := &mockConversionService{
			registerCurrencyFunc: func(ctx context.Context, code string, rateVsBase float64, name, symbol string) error {
				return rates.ErrInvalidRate
			},
		}

		body := bytes.NewBufferString(`{"code":"CHF","rate_vs_base":0}`)
		req := httptest.NewRequest(http.MethodPost, "/currencies", body)
		w := httptest.NewRecorder()

		HandleRegisterCurrency(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		svc := &mockConversionService{}

		body := bytes.NewBufferString(`{`)
		req := httptest.NewRequest(http.MethodPost, "/currencies", body)
		w := httptest.NewRecorder()

		HandleRegisterCurrency(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestHandleSetCustomRate(t *testing.T) {
	t.Run("valid override returns 200", func(t *testing.T) {
		svc := &mockConversionService{
			setCustomRateFunc: func(ctx context.Context, from, to string, rate float64) error {
				return nil
			},
		}

		body := bytes.NewBufferString(`{"from":"USD","to":"EUR","rate":0.95}`)
		req := httptest.NewRequest(http.MethodPut, "/rates/custom", body)
		w := httptest.NewRecorder()

		HandleSetCustomRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("unsupported provider returns 501", func(t *testing.T) {
		svc := &mockConversionService{
			setCustomRateFunc: func(ctx context.Context, from, to string, rate float64) error {
				return rates.ErrCustomRatesUnsupported
			},
		}

		body := bytes.NewBufferString(`{"from":"USD","to":"EUR","rate":0.95}`)
		req := httptest.NewRequest(http.MethodPut, "/rates/custom", body)
		w := httptest.NewRecorder()

		HandleSetCustomRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotImplemented {
			t.Errorf("Expected status 501, got %d", w.Code)
		}
	})
}

func TestHandleLatestConversion(t *testing.T) {
	t.Run("not found returns 404", func(t *testing.T) {
		svc := &mockConversionService{
			latestConversionFunc: func(ctx context.Context, from, to string) (*service.ConversionResult, error) {
				return nil, service.ErrNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/conversions/latest?from=USD&to=EUR", nil)
		w := httptest.NewRecorder()

		HandleLatestConversion(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		svc := &mockConversionService{
			latestConversionFunc: func(ctx context.Context, from, to string) (*service.ConversionResult, error) {
				return nil, service.ErrInternal
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/conversions/latest?from=USD&to=EUR", nil)
		w := httptest.NewRecorder()

		HandleLatestConversion(svc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}
	})
}

func TestHandleRecentConversions(t *testing.T) {
	svc := &mockConversionService{
		recentConversionsFunc: func(ctx context.Context, from, to string, limit int) ([]service.ConversionResult, error) {
			if limit != 5 {
				t.Errorf("expected limit 5, got %d", limit)
			}
			return []service.ConversionResult{
				{ID: "a", From: "USD", To: "EUR", Amount: 1, Rate: 0.92, Result: 0.92, ConvertedAt: time.Now()},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/conversions/recent?from=USD&to=EUR&limit=5", nil)
	w := httptest.NewRecorder()

	HandleRecentConversions(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp []ConversionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "a" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
