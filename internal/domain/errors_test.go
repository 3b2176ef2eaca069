package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	plain := NewAppError(CodeValidation, "bad input", nil)
	if plain.Error() != "bad input" {
		t.Errorf("Error() = %q", plain.Error())
	}

	wrapped := NewAppError(CodeInternal, "database error", errors.New("disk full"))
	if wrapped.Error() != "database error: disk full" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("Unwrap chain broken")
	}
}

func TestStoreErrorConstructors(t *testing.T) {
	cause := errors.New("boom")

	fetch := NewFetchError("coupon", cause)
	if fetch.Error() != "failed to load coupon: boom" {
		t.Errorf("fetch message = %q", fetch.Error())
	}
	if !IsFetchFailed(fetch) {
		t.Error("IsFetchFailed false")
	}

	update := NewUpdateError("coupon", "id1", cause)
	if update.Error() != `failed to update coupon "id1": boom` {
		t.Errorf("update message = %q", update.Error())
	}
	if !IsUpdateFailed(update) {
		t.Error("IsUpdateFailed false")
	}

	del := NewDeleteError("coupon", "id1", cause)
	if del.Error() != `failed to delete coupon "id1": boom` {
		t.Errorf("delete message = %q", del.Error())
	}
	if !IsDeleteFailed(del) {
		t.Error("IsDeleteFailed false")
	}
}

func TestIsHelpers_MatchWrappedErrors(t *testing.T) {
	err := fmt.Errorf("context: %w", ErrNotFound)
	if !IsNotFound(err) {
		t.Error("IsNotFound must see through fmt wrapping")
	}
	if IsValidation(err) {
		t.Error("IsValidation matched wrong code")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("IsNotFound matched non-AppError")
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInternal, http.StatusInternalServerError},
		{NewFetchError("coupon", nil), http.StatusBadGateway},
		{NewUpdateError("coupon", "x", nil), http.StatusBadGateway},
		{NewDeleteError("coupon", "x", nil), http.StatusBadGateway},
		{errors.New("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatusCode(tt.err); got != tt.want {
			t.Errorf("HTTPStatusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
