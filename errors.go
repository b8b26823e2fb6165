package sqltypes

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

// ErrNull is returned when value of null instance is accessed.
var ErrNull = errors.New("value is null")

// RangeError is returned when constructed DateTime would not fit
// [MinValue, MaxValue] or calendar fields are invalid.
type RangeError struct {
	// Value is the attempted value.
	//
	// Zero if Value can't be represented, see Err.
	Value time.Time
	Min   time.Time
	Max   time.Time
	// Err is optional cause, e.g. invalid calendar fields.
	Err error
}

func (e *RangeError) Unwrap() error { return e.Err }

func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("datetime overflow: %v", e.Err)
	}
	return fmt.Sprintf("datetime overflow: must be between %s and %s, got %s",
		e.Min.Format(Layout), e.Max.Format(Layout), e.Value.Format(Layout),
	)
}

func rangeErr(v time.Time, cause error) *RangeError {
	return &RangeError{
		Value: v,
		Min:   minTime,
		Max:   maxTime,
		Err:   cause,
	}
}
