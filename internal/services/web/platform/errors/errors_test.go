package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{err: E(KindUnauthorized, "unauthorized"), want: http.StatusUnauthorized},
		{err: E(KindForbidden, "forbidden"), want: http.StatusForbidden},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindConflict, "conflict"), want: http.StatusConflict},
		{err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
}

func TestWrapKeepsCauseAndKind(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("load elements: %w", Wrap(KindUnavailable, "cms request", cause))
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnavailable)
	}
	if got := err.Error(); got != "load elements: cms request: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
	if Wrap(KindUnavailable, "noop", nil) != nil {
		t.Fatal("Wrap(nil) should return nil")
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindUnauthorized, " web.error.sign_in_failed ", "bad token")); got != "web.error.sign_in_failed" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}
