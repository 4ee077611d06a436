package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/auth"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "bad" {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "u-" + token}, nil
}

func TestSessionContext_BearerToken(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := SessionContext(stubVerifier{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !ok || got.UserID != "u-abc" {
		t.Fatalf("expected claims from token, got %+v ok=%v", got, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if ok {
		t.Fatal("invalid token must not set claims")
	}
}

func TestSessionContext_ObserverHeader(t *testing.T) {
	var got auth.Claims
	h := SessionContext(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ObserverHeader, "dev-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got.UserID != "dev-1" {
		t.Fatalf("expected dev user, got %+v", got)
	}
}

func TestRecoverAndRequestLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Output: &buf})

	h := RequestLog(log)(Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/captures", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `msg="panic recovered"`) || !strings.Contains(out, "status=500") {
		t.Fatalf("expected panic and request lines, got:\n%s", out)
	}
}
