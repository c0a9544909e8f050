package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidArguments.Error() != "invalid arguments" {
		t.Errorf("ErrInvalidArguments has unexpected message: %s", ErrInvalidArguments.Error())
	}
	if ErrNumericOverflow.Error() != "duration is too large" {
		t.Errorf("ErrNumericOverflow has unexpected message: %s", ErrNumericOverflow.Error())
	}
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Success", nil, 0},
		{"InvalidArguments", ErrInvalidArguments, 2},
		{"WrappedInvalidArguments", fmt.Errorf("usage: %w", ErrInvalidArguments), 2},
		{"InvalidConfig", NewConfigError("wait.refreshIntervalMs", 0, "must be positive"), 3},
		{"MalformedToken", NewMalformedTokenError("5"), 1},
		{"UnrecognisedUnit", NewUnrecognisedUnitError("5x", 'x'), 1},
		{"Overflow", NewNumericOverflowError("99999999999h"), 1},
		{"UnknownError", errors.New("unknown error"), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ExitCode(tc.err)
			if code != tc.expected {
				t.Errorf("ExitCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestParseError_Kinds(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"UnrecognisedUnit", NewUnrecognisedUnitError("5x", 'x'), ErrUnrecognisedUnit, `cannot understand suffix 'x' in "5x"`},
		{"MalformedToken", NewMalformedTokenError(" 30m"), ErrMalformedToken, `cannot understand split " 30m"`},
		{"EmptyInput", NewMalformedTokenError(""), ErrMalformedToken, "cannot parse empty duration"},
		{"Overflow", NewNumericOverflowError("9h"), ErrNumericOverflow, `duration is too large at "9h"`},
	}

	all := []error{ErrUnrecognisedUnit, ErrMalformedToken, ErrNumericOverflow}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.message {
				t.Errorf("Error() = %s, want %s", tc.err.Error(), tc.message)
			}
			for _, s := range all {
				want := s == tc.sentinel
				if got := errors.Is(tc.err, s); got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", tc.err, s, got, want)
				}
			}
			if !IsParseError(fmt.Errorf("wrapped: %w", tc.err)) {
				t.Errorf("IsParseError(wrapped %v) = false, want true", tc.err)
			}
		})
	}
}

func TestParseError_LogFields(t *testing.T) {
	err := NewUnrecognisedUnitError("5x", 'x')

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As(err, *ParseError) = false, want true")
	}

	fields := pe.LogFields()
	if fields["error_type"] != "unrecognised_unit" {
		t.Errorf("error_type = %v, want unrecognised_unit", fields["error_type"])
	}
	if fields["unit"] != "x" {
		t.Errorf("unit = %v, want x", fields["unit"])
	}
	if fields["fragment"] != "5x" {
		t.Errorf("fragment = %v, want 5x", fields["fragment"])
	}

	malformed := NewMalformedTokenError("m").(*ParseError).LogFields()
	if _, ok := malformed["unit"]; ok {
		t.Error("malformed token fields should not carry a unit")
	}
}

func TestOverflowIsDistinct(t *testing.T) {
	if !IsOverflowError(NewNumericOverflowError("1h")) {
		t.Error("IsOverflowError(overflow) = false, want true")
	}
	if IsOverflowError(NewMalformedTokenError("1")) {
		t.Error("IsOverflowError(malformed) = true, want false")
	}
	if IsParseError(ErrInvalidArguments) {
		t.Error("IsParseError(ErrInvalidArguments) = true, want false")
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("progress.style", "fancy", "must be one of auto, bar, line")

	expected := "invalid configuration progress.style=fancy: must be one of auto, bar, line"
	if err.Error() != expected {
		t.Errorf("ConfigError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("errors.Is(err, ErrInvalidConfig) = false, want true")
	}
}
