// Package service implements the business logic for currency conversion.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"convsvc/internal/catalog"
	"convsvc/internal/metrics"
	"convsvc/internal/rates"
	"convsvc/internal/repository"
)

// ConversionServiceInterface defines the operations available for conversion management.
type ConversionServiceInterface interface {
	Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error)
	ListCurrencies(ctx context.Context) []CurrencyInfo
	SetCustomRate(ctx context.Context, from, to string, rate float64) error
	RegisterCurrency(ctx context.Context, code string, rateVsBase float64, name, symbol string) error
	RecentConversions(ctx context.Context, from, to string, limit int) ([]ConversionResult, error)
	LatestConversion(ctx context.Context, from, to string) (*ConversionResult, error)
	RecordConversion(ctx context.Context, payload RecordConversionPayload) error
}

// TaskEnqueuer enqueues audit record tasks for background processing.
type TaskEnqueuer interface {
	EnqueueRecordTask(ctx context.Context, payload RecordConversionPayload) error
}

// ConversionResult is one performed (or stored) conversion.
type ConversionResult struct {
	ID          string
	From        string
	To          string
	Amount      float64
	Rate        float64
	Result      float64
	ConvertedAt time.Time
}

// CurrencyInfo is a supported code joined with its catalog metadata.
// Name and Symbol are empty for codes the catalog does not describe.
type CurrencyInfo struct {
	Code   string
	Name   string
	Symbol string
}

// ConversionService orchestrates the rate core, catalog, audit log, and cache.
type ConversionService struct {
	registry  rates.Registry
	converter *rates.Converter
	catalog   *catalog.Catalog
	repo      repository.ConversionRepository
	enqueuer  TaskEnqueuer
	cache     *redis.Client
	met       *metrics.ConversionMetrics
	log       *zap.SugaredLogger
	cacheTTL  time.Duration
}

// NewConversionService creates a new ConversionService.
func NewConversionService(
	registry rates.Registry,
	converter *rates.Converter,
	cat *catalog.Catalog,
	repo repository.ConversionRepository,
	enqueuer TaskEnqueuer,
	cache *redis.Client,
	met *metrics.ConversionMetrics,
	logger *zap.SugaredLogger,
	cacheTTL time.Duration,
) *ConversionService {
	return &ConversionService{
		registry:  registry,
		converter: converter,
		catalog:   cat,
		repo:      repo,
		enqueuer:  enqueuer,
		cache:     cache,
		met:       met,
		log:       logger,
		cacheTTL:  cacheTTL,
	}
}

// Convert converts amount between two currency codes. Core errors
// (unsupported currency, negative amount) pass through unchanged. The audit
// record and cache update are best effort and never fail the conversion.
func (s *ConversionService) Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		s.countError(metrics.ErrKindInvalidFormat, err)
		return nil, err
	}

	// Resolve the rate once so the audit record can never disagree with the
	// result, even when an override lands mid-request.
	result, rate, err := s.converter.ConvertWithRate(from, to, amount)
	if err != nil {
		s.countConvertError(err)
		return nil, err
	}

	res := &ConversionResult{
		ID:          uuid.New().String(),
		From:        from,
		To:          to,
		Amount:      amount,
		Rate:        rate,
		Result:      result,
		ConvertedAt: time.Now().UTC(),
	}

	if s.met != nil {
		s.met.ConversionsTotal.WithLabelValues(from, to).Inc()
	}
	s.enqueueRecord(ctx, res)
	s.cacheSetLatest(ctx, res)

	return res, nil
}

// ListCurrencies returns supported codes sorted alphabetically, joined with
// catalog metadata where available.
func (s *ConversionService) ListCurrencies(_ context.Context) []CurrencyInfo {
	codes := s.registry.SupportedCodes()
	sort.Strings(codes)

	out := make([]CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		info := CurrencyInfo{Code: code}
		if cur, ok := s.catalog.Get(code); ok {
			info.Name = cur.Name
			info.Symbol = cur.Symbol
		}
		out = append(out, info)
	}
	return out
}

// SetCustomRate pins a directly quoted rate for one ordered pair.
func (s *ConversionService) SetCustomRate(ctx context.Context, from, to string, rate float64) error {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return err
	}

	if err := s.registry.SetCustomRate(from, to, rate); err != nil {
		s.countError(metrics.ErrKindInvalidRate, err)
		return err
	}

	if s.met != nil {
		s.met.RateOverridesTotal.WithLabelValues(from, to).Inc()
	}
	s.log.Infow("Custom rate set", "from", from, "to", to, "rate", rate)
	return nil
}

// RegisterCurrency adds a code to the rate table and, when name or symbol is
// given, to the display catalog.
func (s *ConversionService) RegisterCurrency(_ context.Context, code string, rateVsBase float64, name, symbol string) error {
	if !IsValidCurrencyCode(code) {
		return ErrInvalidCodeFormat
	}

	if err := s.registry.RegisterCurrency(code, rateVsBase); err != nil {
		s.countError(metrics.ErrKindInvalidRate, err)
		return err
	}

	if name != "" || symbol != "" {
		s.catalog.Register(catalog.Currency{Code: code, Name: name, Symbol: symbol})
	}
	s.log.Infow("Currency registered", "code", code, "rate_vs_base", rateVsBase)
	return nil
}

// RecentConversions returns up to limit audit records for a pair, newest first.
func (s *ConversionService) RecentConversions(ctx context.Context, from, to string, limit int) ([]ConversionResult, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	convs, err := s.repo.ListRecent(ctx, from, to, limit)
	if err != nil {
		s.log.Errorw("DB error listing conversions", "from", from, "to", to, "error", err)
		return nil, ErrInternal
	}

	out := make([]ConversionResult, 0, len(convs))
	for i := range convs {
		out = append(out, conversionResultFromRepo(&convs[i]))
	}
	return out, nil
}

// LatestConversion returns the most recent conversion for a pair, consulting
// the cache before the audit log.
func (s *ConversionService) LatestConversion(ctx context.Context, from, to string) (*ConversionResult, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}

	if res, ok := s.cacheGetLatest(ctx, from, to); ok {
		return res, nil
	}

	conv, err := s.repo.GetLatest(ctx, from, to)
	if err != nil {
		s.log.Errorw("DB error fetching latest conversion", "from", from, "to", to, "error", err)
		return nil, ErrInternal
	}
	if conv == nil {
		return nil, ErrNotFound
	}

	res := conversionResultFromRepo(conv)
	s.cacheSetLatest(ctx, &res)
	return &res, nil
}

// RecordConversion persists one audit record (called by the background worker).
func (s *ConversionService) RecordConversion(ctx context.Context, payload RecordConversionPayload) error {
	err := s.repo.Insert(ctx, &repository.Conversion{
		ID:          payload.ID,
		FromCode:    payload.From,
		ToCode:      payload.To,
		Amount:      payload.Amount,
		Rate:        payload.Rate,
		Result:      payload.Result,
		ConvertedAt: payload.ConvertedAt,
	})
	if err != nil {
		s.log.Errorw("DB error inserting conversion record", "id", payload.ID, "error", err)
		return err
	}
	return nil
}

func (s *ConversionService) enqueueRecord(ctx context.Context, res *ConversionResult) {
	if s.enqueuer == nil {
		return
	}

	payload := RecordConversionPayload{
		ID:          res.ID,
		From:        res.From,
		To:          res.To,
		Amount:      res.Amount,
		Rate:        res.Rate,
		Result:      res.Result,
		ConvertedAt: res.ConvertedAt,
	}
	if err := s.enqueuer.EnqueueRecordTask(ctx, payload); err != nil {
		// The conversion already succeeded from the caller's perspective;
		// a lost audit record is logged, not surfaced.
		s.log.Warnw("Failed to enqueue conversion record", "id", res.ID, "error", err)
		s.countError(metrics.ErrKindInternal, err)
	}
}

func conversionResultFromRepo(c *repository.Conversion) ConversionResult {
	return ConversionResult{
		ID:          c.ID,
		From:        c.FromCode,
		To:          c.ToCode,
		Amount:      c.Amount,
		Rate:        c.Rate,
		Result:      c.Result,
		ConvertedAt: c.ConvertedAt,
	}
}
