package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"moviecatalog/errs"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.Error
		expected string
	}{
		{
			name:     "invalid rating",
			err:      &errs.Error{Code: errs.EINVALID, Message: "rating should be between 1 and 5"},
			expected: "application error: code=invalid message=rating should be between 1 and 5",
		},
		{
			name:     "missing movie",
			err:      &errs.Error{Code: errs.ENOTFOUND, Message: "movie not found"},
			expected: "application error: code=not_found message=movie not found",
		},
		{
			name:     "empty message",
			err:      &errs.Error{Code: errs.EINTERNAL},
			expected: "application error: code=internal message=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its code", err: errs.Errorf(errs.ENOTFOUND, "movie not found"), expected: errs.ENOTFOUND},
		{name: "non-application error returns EINTERNAL", err: errors.New("boom"), expected: errs.EINTERNAL},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("rate MV1: %w", errs.Errorf(errs.EINVALID, "bad rating")),
			expected: errs.EINVALID,
		},
		{name: "joined application error", err: errors.Join(errs.Errorf(errs.ECONFLICT, "dup")), expected: errs.ECONFLICT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its message", err: errs.Errorf(errs.EINVALID, "release year must be a whole number"), expected: "release year must be a whole number"},
		{name: "non-application error is hidden", err: errors.New("index out of range"), expected: "Internal error."},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("remove: %w", errs.Errorf(errs.ENOTFOUND, "movie not found")),
			expected: "movie not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.ENOTFOUND, "movie %s not found", "MV7")

	if err.Code != errs.ENOTFOUND {
		t.Errorf("Errorf().Code = %q, want %q", err.Code, errs.ENOTFOUND)
	}
	if err.Message != "movie MV7 not found" {
		t.Errorf("Errorf().Message = %q, want %q", err.Message, "movie MV7 not found")
	}
}

func TestErrorCodes(t *testing.T) {
	expected := map[string]string{
		errs.ECONFLICT:       "conflict",
		errs.EINTERNAL:       "internal",
		errs.EINVALID:        "invalid",
		errs.ENOTFOUND:       "not_found",
		errs.ENOTIMPLEMENTED: "not_implemented",
		errs.EUNAUTHORIZED:   "unauthorized",
	}

	for code, want := range expected {
		if code != want {
			t.Errorf("code = %q, want %q", code, want)
		}
	}
}
