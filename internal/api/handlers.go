package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"convsvc/internal/rates"
	"convsvc/internal/service"
)

// ConversionResponse represents the response for a conversion request
type ConversionResponse struct {
	ID          string  `json:"id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	From        string  `json:"from" example:"USD"`
	To          string  `json:"to" example:"EUR"`
	Amount      float64 `json:"amount" example:"100"`
	Rate        float64 `json:"rate" example:"0.92"`
	Result      float64 `json:"result" example:"92"`
	ConvertedAt string  `json:"converted_at" example:"2026-08-01T10:15:30Z"`
}

// CurrencyResponse represents one supported currency
type CurrencyResponse struct {
	Code   string `json:"code" example:"EUR"`
	Name   string `json:"name,omitempty" example:"Euro"`
	Symbol string `json:"symbol,omitempty" example:"€"`
}

// RegisterCurrencyRequest represents the request body for currency registration
type RegisterCurrencyRequest struct {
	Code       string  `json:"code" example:"CHF"`
	RateVsBase float64 `json:"rate_vs_base" example:"0.88"`
	Name       string  `json:"name" example:"Swiss Franc"`
	Symbol     string  `json:"symbol" example:"CHF"`
}

// CustomRateRequest represents the request body for a rate override
type CustomRateRequest struct {
	From string  `json:"from" example:"USD"`
	To   string  `json:"to" example:"EUR"`
	Rate float64 `json:"rate" example:"0.95"`
}

// HandleConvert godoc
// @Summary Convert an amount between two currencies
// @Description Converts a non-negative amount from one currency code to another using the current rate table and overrides.
// @Tags conversion
// @Produce json
// @Param from query string true "Source currency code (3 letters)" minlength(3) maxlength(3)
// @Param to query string true "Target currency code (3 letters)" minlength(3) maxlength(3)
// @Param amount query number true "Amount to convert (non-negative)"
// @Success 200 {object} ConversionResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid input or unsupported currency"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /convert [get]
func HandleConvert(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		amountStr := r.URL.Query().Get("amount")
		if from == "" || to == "" || amountStr == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from, to and amount query params are required"})
			return
		}

		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "amount must be a finite number"})
			return
		}

		res, err := svc.Convert(r.Context(), from, to, amount)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, conversionResponse(res))
	}
}

// HandleListCurrencies godoc
// @Summary List supported currencies
// @Description Returns all currency codes the rate table supports, sorted alphabetically, with display metadata where known.
// @Tags currencies
// @Produce json
// @Success 200 {array} CurrencyResponse "Supported currencies"
// @Router /currencies [get]
func HandleListCurrencies(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := svc.ListCurrencies(r.Context())

		out := make([]CurrencyResponse, 0, len(list))
		for _, info := range list {
			out = append(out, CurrencyResponse{Code: info.Code, Name: info.Name, Symbol: info.Symbol})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleRegisterCurrency godoc
// @Summary Register a currency
// @Description Adds or overwrites a currency in the rate table with its rate vs the base currency, plus optional display metadata.
// @Tags currencies
// @Accept json
// @Produce json
// @Param request body RegisterCurrencyRequest true "Currency to register"
// @Success 201 {object} CurrencyResponse "Currency registered"
// @Failure 400 {object} ErrorResponse "Invalid code or non-positive rate"
// @Router /currencies [post]
func HandleRegisterCurrency(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterCurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}

		if err := svc.RegisterCurrency(r.Context(), req.Code, req.RateVsBase, req.Name, req.Symbol); err != nil {
			writeConversionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CurrencyResponse{Code: req.Code, Name: req.Name, Symbol: req.Symbol})
	}
}

// HandleSetCustomRate godoc
// @Summary Override the rate for one ordered currency pair
// @Description Pins a directly quoted rate for from->to, bypassing triangulation for that pair. The reverse direction is unaffected.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body CustomRateRequest true "Ordered pair and positive rate"
// @Success 200 {object} CustomRateRequest "Override applied"
// @Failure 400 {object} ErrorResponse "Invalid code or non-positive rate"
// @Failure 501 {object} ErrorResponse "Provider does not support custom rates"
// @Router /rates/custom [put]
func HandleSetCustomRate(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CustomRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}

		if err := svc.SetCustomRate(r.Context(), req.From, req.To, req.Rate); err != nil {
			writeConversionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

// HandleRecentConversions godoc
// @Summary List recent conversions for a pair
// @Description Returns the most recent audited conversions for the given ordered pair, newest first.
// @Tags conversion
// @Produce json
// @Param from query string true "Source currency code (3 letters)"
// @Param to query string true "Target currency code (3 letters)"
// @Param limit query int false "Maximum records to return (default 10, max 100)"
// @Success 200 {array} ConversionResponse "Recent conversions"
// @Failure 400 {object} ErrorResponse "Invalid currency code format"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /conversions/recent [get]
func HandleRecentConversions(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to query params are required"})
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		convs, err := svc.RecentConversions(r.Context(), from, to, limit)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		out := make([]ConversionResponse, 0, len(convs))
		for i := range convs {
			out = append(out, conversionResponse(&convs[i]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleLatestConversion godoc
// @Summary Get the latest conversion for a pair
// @Description Returns the most recent audited conversion for the given ordered pair, served from cache when possible.
// @Tags conversion
// @Produce json
// @Param from query string true "Source currency code (3 letters)"
// @Param to query string true "Target currency code (3 letters)"
// @Success 200 {object} ConversionResponse "Latest conversion"
// @Failure 400 {object} ErrorResponse "Invalid currency code format"
// @Failure 404 {object} ErrorResponse "No conversion recorded for the pair"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /conversions/latest [get]
func HandleLatestConversion(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to query params are required"})
			return
		}

		res, err := svc.LatestConversion(r.Context(), from, to)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, conversionResponse(res))
	}
}

func conversionResponse(res *service.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ID:          res.ID,
		From:        res.From,
		To:          res.To,
		Amount:      res.Amount,
		Rate:        res.Rate,
		Result:      res.Result,
		ConvertedAt: res.ConvertedAt.Format(time.RFC3339),
	}
}

// writeConversionError maps service and core errors to HTTP statuses.
func writeConversionError(w http.ResponseWriter, err error) {
	var ucErr *rates.UnsupportedCurrencyError
	switch {
	case errors.As(err, &ucErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ucErr.Error()})
	case errors.Is(err, rates.ErrNegativeAmount),
		errors.Is(err, rates.ErrInvalidRate),
		errors.Is(err, service.ErrInvalidCodeFormat):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, rates.ErrCustomRatesUnsupported):
		writeJSON(w, http.StatusNotImplemented, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no conversion recorded for this pair"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
