package errors

import (
	"errors"
	"testing"
)

func TestExtractionErrorMessage(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Unprocessable("не удалось обработать запрос", cause)

	if got := err.Error(); got != "[UNPROCESSABLE] не удалось обработать запрос: unexpected end of JSON input" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap() should expose the cause")
	}

	plain := InvalidArgument("empty input")
	if got := plain.Error(); got != "[INVALID_ARGUMENT] empty input" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsCode(t *testing.T) {
	err := InvalidArgument("empty input")

	if !IsCode(err, ErrCodeInvalidArgument) {
		t.Error("IsCode() should match the error's code")
	}
	if IsCode(err, ErrCodeUnprocessable) {
		t.Error("IsCode() should not match a different code")
	}
	if IsCode(errors.New("plain"), ErrCodeInvalidArgument) {
		t.Error("IsCode() should not match a non-ExtractionError")
	}
}
