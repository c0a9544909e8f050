package usecase

import (
	"time"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
)

// DurationParser turns a duration expression into a total wait time
type DurationParser interface {
	// Tokenize splits the expression into its (magnitude, unit) tokens
	Tokenize(input string) (entity.DurationSpec, error)

	// Parse returns the sum of all tokens of the expression
	Parse(input string) (time.Duration, error)
}
