package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected unwrap to reach cause")
	}
	if e.Error() != "An internal error occurred: disk full" {
		t.Fatalf("unexpected message: %q", e.Error())
	}

	wire := e.ToHTTPError()
	if wire.Code != "INTERNAL_ERROR" || wire.Message != "An internal error occurred" {
		t.Fatalf("unexpected wire error: %+v", wire)
	}

	simple := NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	if simple.Error() != "Booking not found" || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
