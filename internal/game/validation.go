package game

import (
	"errors"
	"fmt"
)

var (
	// ErrMinLengthAboveMax matches a ValidationError about the length range.
	ErrMinLengthAboveMax = errors.New("min length is bigger than max length")
	// ErrMinScoreAboveMax matches a ValidationError about the score range.
	ErrMinScoreAboveMax = errors.New("min score is bigger than max score")
)

// ValidationKind identifies which rule a configuration broke.
type ValidationKind int

const (
	MinLengthIsBiggerThanMaxLength ValidationKind = iota + 1
	MinScoreIsBiggerThanMaxScore
)

func (k ValidationKind) String() string {
	switch k {
	case MinLengthIsBiggerThanMaxLength:
		return "MinLengthIsBiggerThanMaxLength"
	case MinScoreIsBiggerThanMaxScore:
		return "MinScoreIsBiggerThanMaxScore"
	default:
		return fmt.Sprintf("ValidationKind(%d)", int(k))
	}
}

// ValidationError reports an inverted range in a RandomMode.
type ValidationError struct {
	Kind ValidationKind
	Min  uint8
	Max  uint8
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MinLengthIsBiggerThanMaxLength:
		return fmt.Sprintf("min word length (%d) must be smaller than max length (%d)", e.Min, e.Max)
	case MinScoreIsBiggerThanMaxScore:
		return fmt.Sprintf("min word score (%d) must be smaller than max score (%d)", e.Min, e.Max)
	default:
		return fmt.Sprintf("invalid configuration: %s", e.Kind)
	}
}

// Is lets errors.Is match the package sentinels.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case MinLengthIsBiggerThanMaxLength:
		return target == ErrMinLengthAboveMax
	case MinScoreIsBiggerThanMaxScore:
		return target == ErrMinScoreAboveMax
	}
	return false
}

// Validate checks a mode before a State is built from it. Manual mode is
// always valid. Random mode checks the length range first, then the score
// range. The corpus is not consulted.
func Validate(m Mode) error {
	switch m := m.(type) {
	case ManualMode:
		return nil
	case RandomMode:
		if m.MinLength > m.MaxLength {
			return &ValidationError{Kind: MinLengthIsBiggerThanMaxLength, Min: m.MinLength, Max: m.MaxLength}
		}
		if m.MinScore > m.MaxScore {
			return &ValidationError{Kind: MinScoreIsBiggerThanMaxScore, Min: m.MinScore, Max: m.MaxScore}
		}
		return nil
	default:
		return fmt.Errorf("unknown game mode %T", m)
	}
}
