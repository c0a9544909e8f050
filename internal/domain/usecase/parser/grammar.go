package parser

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
)

// scan walks the expression token by token, in input order, and stops at the
// first token that is malformed or rejected by visit.
//
// A token is the run of characters up to and including the next letter. Text
// left after the last letter becomes a final token with no unit.
func scan(input string, visit func(entity.Token) error) error {
	if input == "" {
		return errs.NewMalformedTokenError("")
	}

	start := 0
	for i, r := range input {
		if !unicode.IsLetter(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		tok, err := readToken(input[start:i], input[start:end], r)
		if err != nil {
			return err
		}
		if err := visit(tok); err != nil {
			return err
		}
		start = end
	}

	if start < len(input) {
		// digits with no unit letter after them
		return errs.NewMalformedTokenError(input[start:])
	}
	return nil
}

// readToken validates one token: digits is the text before the unit letter
// and raw is the whole token including the letter.
func readToken(digits, raw string, suffix rune) (entity.Token, error) {
	if !isDigitRun(digits) {
		return entity.Token{}, errs.NewMalformedTokenError(raw)
	}

	// an unknown letter wins over an out of range digit run
	unit, ok := entity.UnitFromSuffix(suffix)
	if !ok {
		return entity.Token{}, errs.NewUnrecognisedUnitError(raw, suffix)
	}

	magnitude, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return entity.Token{}, errs.NewNumericOverflowError(raw)
		}
		return entity.Token{}, errs.NewMalformedTokenError(raw)
	}

	return entity.Token{Raw: raw, Magnitude: magnitude, Unit: unit}, nil
}

// isDigitRun reports whether s is one or more ASCII digits
func isDigitRun(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// accumulator sums token seconds with overflow checks against the
// time.Duration range
type accumulator struct {
	seconds uint64
}

func (a *accumulator) add(tok entity.Token) error {
	scale := tok.Unit.ScaleSeconds()
	if tok.Magnitude > entity.MaxSeconds/scale {
		return errs.NewNumericOverflowError(tok.Raw)
	}
	secs := tok.Magnitude * scale
	if secs > entity.MaxSeconds-a.seconds {
		return errs.NewNumericOverflowError(tok.Raw)
	}
	a.seconds += secs
	return nil
}
