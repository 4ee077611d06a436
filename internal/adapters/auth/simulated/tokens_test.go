package simulated

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fauna-field-log/internal/ports/auth"
)

func TestTokens_IssueThenVerify(t *testing.T) {
	tk := NewTokens()

	token, err := tk.Issue(context.Background(), auth.Claims{UserID: "ana", Email: "ana@ejemplo.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !strings.HasPrefix(token, "ses-") {
		t.Fatalf("unexpected token %q", token)
	}

	c, err := tk.Verify(context.Background(), token)
	if err != nil || c.Email != "ana@ejemplo.com" {
		t.Fatalf("unexpected claims %+v err=%v", c, err)
	}
}

func TestTokens_VerifyUnknownAndEmpty(t *testing.T) {
	tk := NewTokens()

	c, err := tk.Verify(context.Background(), "cualquiera")
	if err != nil || c.UserID != "cualquiera" {
		t.Fatalf("unknown tokens are accepted, got %+v err=%v", c, err)
	}
	if _, err := tk.Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
