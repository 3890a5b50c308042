package api

import (
	"context"

	"convsvc/internal/service"
)

// mockConversionService implements service.ConversionServiceInterface for testing.
type mockConversionService struct {
	convertFunc           func(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error)
	listCurrenciesFunc    func(ctx context.Context) []service.CurrencyInfo
	setCustomRateFunc     func(ctx context.Context, from, to string, rate float64) error
	registerCurrencyFunc  func(ctx context.Context, code string, rateVsBase float64, name, symbol string) error
	recentConversionsFunc func(ctx context.Context, from, to string, limit int) ([]service.ConversionResult, error)
	latestConversionFunc  func(ctx context.Context, from, to string) (*service.ConversionResult, error)
}

func (m *mockConversionService) Convert(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error) {
	return m.convertFunc(ctx, from, to, amount)
}

func (m *mockConversionService) ListCurrencies(ctx context.Context) []service.CurrencyInfo {
	return m.listCurrenciesFunc(ctx)
}

func (m *mockConversionService) SetCustomRate(ctx context.Context, from, to string, rate float64) error {
	return m.setCustomRateFunc(ctx, from, to, rate)
}

func (m *mockConversionService) RegisterCurrency(ctx context.Context, code string, rateVsBase float64, name, symbol string) error {
	return m.registerCurrencyFunc(ctx, code, rateVsBase, name, symbol)
}

func (m *mockConversionService) RecentConversions(ctx context.Context, from, to string, limit int) ([]service.ConversionResult, error) {
	return m.recentConversionsFunc(ctx, from, to, limit)
}

func (m *mockConversionService) LatestConversion(ctx context.Context, from, to string) (*service.ConversionResult, error) {
	return m.latestConversionFunc(ctx, from, to)
}

func (m *mockConversionService) RecordConversion(_ context.Context, _ service.RecordConversionPayload) error {
	return nil // Not used in handler tests
}
