package parser

import (
	"time"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
	coreport "github.com/amirhossein-jamali/waitbar/internal/domain/port/core"
	"github.com/amirhossein-jamali/waitbar/internal/domain/port/usecase"
)

// Tokenize splits a duration expression such as "1h30m" into its tokens.
// No whitespace or separators are accepted between tokens.
func Tokenize(input string) (entity.DurationSpec, error) {
	var spec entity.DurationSpec
	err := scan(input, func(tok entity.Token) error {
		spec = append(spec, tok)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// Parse returns the total duration of an expression. Repeated units add up,
// so "5m5m" is ten minutes.
func Parse(input string) (time.Duration, error) {
	var acc accumulator
	if err := scan(input, acc.add); err != nil {
		return 0, err
	}
	return time.Duration(acc.seconds) * time.Second, nil
}

// Total sums an already tokenized expression
func Total(spec entity.DurationSpec) (time.Duration, error) {
	var acc accumulator
	for _, tok := range spec {
		if err := acc.add(tok); err != nil {
			return 0, err
		}
	}
	return time.Duration(acc.seconds) * time.Second, nil
}

// DurationParser implements the duration parser use case
type DurationParser struct {
	logger coreport.Logger
}

// NewDurationParser creates a new duration parser
func NewDurationParser(logger coreport.Logger) usecase.DurationParser {
	return &DurationParser{
		logger: logger,
	}
}

// Tokenize splits the expression into tokens
func (p *DurationParser) Tokenize(input string) (entity.DurationSpec, error) {
	spec, err := Tokenize(input)
	if err != nil {
		p.logRejected(input, err)
		return nil, err
	}
	return spec, nil
}

// Parse returns the total duration of the expression
func (p *DurationParser) Parse(input string) (time.Duration, error) {
	total, err := Parse(input)
	if err != nil {
		p.logRejected(input, err)
		return 0, err
	}

	p.logger.Debug("Duration parsed", map[string]any{
		"input": input,
		"total": total.String(),
	})
	return total, nil
}

func (p *DurationParser) logRejected(input string, err error) {
	fields := map[string]any{
		"input": input,
		"error": err.Error(),
	}
	if pe, ok := err.(*errs.ParseError); ok {
		for k, v := range pe.LogFields() {
			fields[k] = v
		}
	}
	p.logger.Debug("Duration rejected", fields)
}
