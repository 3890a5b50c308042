package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates UUID when no request ID provided", func(t *testing.T) {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID, _ := r.Context().Value(requestIDKey).(string)
			if reqID == "" {
				t.Error("Expected request ID in context, got empty string")
			}
			if _, err := uuid.Parse(reqID); err != nil {
				t.Errorf("Expected valid UUID, got: %s", reqID)
			}
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		respReqID := w.Header().Get(headerRequestID)
		if respReqID == "" {
			t.Error("Expected X-Request-Id in response header")
		}
		if _, err := uuid.Parse(respReqID); err != nil {
			t.Errorf("Expected valid UUID in response header, got: %s", respReqID)
		}
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		providedID := "test-request-id-123"
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID, _ := r.Context().Value(requestIDKey).(string)
			if reqID != providedID {
				t.Errorf("Expected request ID %s, got %s", providedID, reqID)
			}
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(headerRequestID, providedID)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get(headerRequestID); got != providedID {
			t.Errorf("Expected %s in response header, got %s", providedID, got)
		}
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("passes through handler status", func(t *testing.T) {
		mw := RequestLoggingMiddleware(logger.Sugar(), nil)
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusTeapot {
			t.Errorf("Expected status 418, got %d", w.Code)
		}
	})

	t.Run("defaults to 200 when handler writes body only", func(t *testing.T) {
		mw := RequestLoggingMiddleware(logger.Sugar(), nil)
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}
