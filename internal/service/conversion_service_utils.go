package service

import (
	"errors"
	"strings"
	"time"

	"convsvc/internal/metrics"
	"convsvc/internal/rates"
)

// ErrInvalidCodeFormat indicates a currency code is not three ASCII letters.
var ErrInvalidCodeFormat = errors.New("invalid currency code format")

// ErrNotFound indicates the requested resource was not found.
var ErrNotFound = errors.New("not found")

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// IsValidCurrencyCode checks whether a string is a valid 3-letter currency code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	code = strings.ToUpper(code)
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// normalizePair validates the format of both codes and uppercases them.
// Format validation is collaborator-side glue; the rate core decides on its
// own whether a well-formed code is actually supported.
func normalizePair(from, to string) (normFrom, normTo string, err error) {
	if !IsValidCurrencyCode(from) || !IsValidCurrencyCode(to) {
		return "", "", ErrInvalidCodeFormat
	}
	return strings.ToUpper(from), strings.ToUpper(to), nil
}

func (s *ConversionService) countError(kind string, _ error) {
	if s.met == nil {
		return
	}
	s.met.ConversionErrorsTotal.WithLabelValues(kind).Inc()
}

func (s *ConversionService) countConvertError(err error) {
	var ucErr *rates.UnsupportedCurrencyError
	switch {
	case errors.As(err, &ucErr):
		s.countError(metrics.ErrKindUnsupportedCurrency, err)
	case errors.Is(err, rates.ErrNegativeAmount):
		s.countError(metrics.ErrKindNegativeAmount, err)
	default:
		s.countError(metrics.ErrKindInternal, err)
	}
}

// TaskTypeRecordConversion is the Asynq task type for audit record jobs.
const TaskTypeRecordConversion = "conversion:record"

// RecordConversionPayload is the payload structure for audit record Asynq tasks.
type RecordConversionPayload struct {
	ID          string    `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Amount      float64   `json:"amount"`
	Rate        float64   `json:"rate"`
	Result      float64   `json:"result"`
	ConvertedAt time.Time `json:"converted_at"`
}
