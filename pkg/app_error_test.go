package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDomainError("QUERY_FAILURE", "connection refused", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := appErr.ToHTTPError()
	if body.Error != "connection refused" || body.Code != "QUERY_FAILURE" {
		t.Fatalf("unexpected body: %+v", body)
	}

	wrapped := fmt.Errorf("handler: %w", appErr)
	got, ok := IsAppError(wrapped)
	if !ok || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected app error, got %v", got)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "Invalid request" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
