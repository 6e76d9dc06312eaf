package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "art-historian/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("handler: %w", pkgErrors.Wrap(cause, http.StatusBadGateway, "upstream failed"))

	if got := pkgErrors.StatusCode(wrapped); got != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("expected cause to be reachable through errors.Is")
	}
	if got := pkgErrors.StatusCode(cause); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain errors, got %d", got)
	}
	if got := pkgErrors.ErrTooManyRequests.Error(); got != "too many requests" {
		t.Errorf("unexpected message %q", got)
	}
}
