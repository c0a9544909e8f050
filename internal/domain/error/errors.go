package error

import (
	"errors"
	"fmt"
)

// Process exit codes
const (
	CodeSuccess          = 0
	CodeParseFailure     = 1
	CodeInvalidArguments = 2
	CodeInvalidConfig    = 3
)

// Base error types
var (
	// ErrInvalidArguments is returned when the command line does not hold exactly one duration
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnrecognisedUnit is returned when a token ends in a letter other than s, m or h
	ErrUnrecognisedUnit = errors.New("unrecognised unit")

	// ErrMalformedToken is returned when a token has no valid digit run or no unit letter
	ErrMalformedToken = errors.New("malformed token")

	// ErrNumericOverflow is returned when the total duration does not fit the representable range
	ErrNumericOverflow = errors.New("duration is too large")

	// ErrInvalidConfig is returned when a configuration value is out of range
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseErrorKind identifies which rule of the duration grammar was broken
type ParseErrorKind int

const (
	// KindMalformedToken marks a token without a usable digit run or unit letter
	KindMalformedToken ParseErrorKind = iota + 1
	// KindUnrecognisedUnit marks a token whose unit letter is not in the unit table
	KindUnrecognisedUnit
	// KindNumericOverflow marks a total that cannot be represented
	KindNumericOverflow
)

// String returns the kind name
func (k ParseErrorKind) String() string {
	switch k {
	case KindMalformedToken:
		return "malformed_token"
	case KindUnrecognisedUnit:
		return "unrecognised_unit"
	case KindNumericOverflow:
		return "numeric_overflow"
	default:
		return "unknown"
	}
}

// sentinel returns the base error matching the kind
func (k ParseErrorKind) sentinel() error {
	switch k {
	case KindMalformedToken:
		return ErrMalformedToken
	case KindUnrecognisedUnit:
		return ErrUnrecognisedUnit
	case KindNumericOverflow:
		return ErrNumericOverflow
	default:
		return nil
	}
}

// ParseError describes why a duration expression was rejected
type ParseError struct {
	Kind     ParseErrorKind
	Fragment string // offending token
	Unit     rune   // offending letter, set for KindUnrecognisedUnit
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindUnrecognisedUnit:
		return fmt.Sprintf("cannot understand suffix %q in %q", e.Unit, e.Fragment)
	case KindMalformedToken:
		if e.Fragment == "" {
			return "cannot parse empty duration"
		}
		return fmt.Sprintf("cannot understand split %q", e.Fragment)
	case KindNumericOverflow:
		return fmt.Sprintf("duration is too large at %q", e.Fragment)
	default:
		return fmt.Sprintf("cannot parse %q", e.Fragment)
	}
}

// Is matches the sentinel error of the kind
func (e *ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": e.Kind.String(),
		"fragment":   e.Fragment,
		"error_code": CodeParseFailure,
	}
	if e.Kind == KindUnrecognisedUnit {
		fields["unit"] = string(e.Unit)
	}
	return fields
}

// NewUnrecognisedUnitError creates an error for a token ending in an unknown letter
func NewUnrecognisedUnitError(fragment string, unit rune) error {
	return &ParseError{Kind: KindUnrecognisedUnit, Fragment: fragment, Unit: unit}
}

// NewMalformedTokenError creates an error for a token that cannot be split into digits and unit
func NewMalformedTokenError(fragment string) error {
	return &ParseError{Kind: KindMalformedToken, Fragment: fragment}
}

// NewNumericOverflowError creates an error for a token that pushed the total out of range
func NewNumericOverflowError(fragment string) error {
	return &ParseError{Kind: KindNumericOverflow, Fragment: fragment}
}

// ConfigError reports a configuration key holding an unusable value
type ConfigError struct {
	Key    string
	Value  any
	Reason string
}

// Error implements the error interface for ConfigError
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%v: %s", e.Key, e.Value, e.Reason)
}

// Is checks if the target error is an ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a configuration error for a single key
func NewConfigError(key string, value any, reason string) error {
	return &ConfigError{Key: key, Value: value, Reason: reason}
}

// ExitCode returns the process exit code for an error
func ExitCode(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrInvalidArguments):
		return CodeInvalidArguments
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	default:
		return CodeParseFailure
	}
}

// IsParseError checks if the error came from the duration parser
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsOverflowError checks if the error is a numeric overflow
func IsOverflowError(err error) bool {
	return errors.Is(err, ErrNumericOverflow)
}
