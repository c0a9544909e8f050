package entity

import (
	"strconv"
	"strings"
	"time"
)

// Unit is a duration suffix recognised in a duration expression
type Unit int

const (
	// UnitSecond is the "s" suffix
	UnitSecond Unit = iota + 1
	// UnitMinute is the "m" suffix
	UnitMinute
	// UnitHour is the "h" suffix
	UnitHour
)

// unitTable maps each suffix letter to its unit
var unitTable = map[rune]Unit{
	's': UnitSecond,
	'm': UnitMinute,
	'h': UnitHour,
}

// UnitFromSuffix looks up the unit for a suffix letter. Lookup is case-sensitive.
func UnitFromSuffix(c rune) (Unit, bool) {
	u, ok := unitTable[c]
	return u, ok
}

// ScaleSeconds returns the number of seconds in one of this unit
func (u Unit) ScaleSeconds() uint64 {
	switch u {
	case UnitSecond:
		return 1
	case UnitMinute:
		return 60
	case UnitHour:
		return 60 * 60
	default:
		return 0
	}
}

// Suffix returns the letter used for this unit in a duration expression
func (u Unit) Suffix() string {
	switch u {
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "m"
	case UnitHour:
		return "h"
	default:
		return "?"
	}
}

// String returns a human-readable unit name
func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	default:
		return "unknown"
	}
}

// Token is one (magnitude, unit) pair of a duration expression
type Token struct {
	Raw       string
	Magnitude uint64
	Unit      Unit
}

// String returns the canonical form of the token, e.g. "30m"
func (t Token) String() string {
	return strconv.FormatUint(t.Magnitude, 10) + t.Unit.Suffix()
}

// DurationSpec is the ordered token list of a parsed duration expression
type DurationSpec []Token

// String joins the canonical form of every token
func (s DurationSpec) String() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.String())
	}
	return b.String()
}

// MaxSeconds is the largest whole number of seconds a time.Duration can hold
const MaxSeconds = uint64(1<<63-1) / uint64(time.Second)
