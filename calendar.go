package sqltypes

import (
	"math"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
)

// daysIn returns number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// checkDate reports all invalid date fields.
//
// Unlike time.Date, out-of-range fields are not normalized.
func checkDate(year int, month time.Month, day int) error {
	var err error
	if year < 1 || year > 9999 {
		err = multierr.Append(err, errors.Errorf("year %d not in [1, 9999]", year))
	}
	maxDay := 31
	if month < time.January || month > time.December {
		err = multierr.Append(err, errors.Errorf("month %d not in [1, 12]", int(month)))
	} else {
		maxDay = daysIn(year, month)
	}
	if day < 1 || day > maxDay {
		err = multierr.Append(err, errors.Errorf("day %d not in [1, %d]", day, maxDay))
	}
	return err
}

func checkClock(hour, minute, sec int) error {
	var err error
	if hour < 0 || hour > 23 {
		err = multierr.Append(err, errors.Errorf("hour %d not in [0, 23]", hour))
	}
	if minute < 0 || minute > 59 {
		err = multierr.Append(err, errors.Errorf("minute %d not in [0, 59]", minute))
	}
	if sec < 0 || sec > 59 {
		err = multierr.Append(err, errors.Errorf("second %d not in [0, 59]", sec))
	}
	return err
}

// wallClock returns UTC time for given calendar fields or *RangeError.
func wallClock(year int, month time.Month, day, hour, minute, sec int) (time.Time, error) {
	if err := multierr.Append(
		checkDate(year, month, day),
		checkClock(hour, minute, sec),
	); err != nil {
		return time.Time{}, rangeErr(time.Time{}, err)
	}
	return time.Date(year, month, day, hour, minute, sec, 0, time.UTC), nil
}

// fractionTicks converts fractional count of units (each unit is
// ticksPerUnit platform ticks) to platform ticks, rounding half to even.
func fractionTicks(v float64, ticksPerUnit int64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("fraction %v is not finite", v)
	}
	ticks := math.RoundToEven(v * float64(ticksPerUnit))
	if math.Abs(ticks) > maxPlatformTicks {
		return 0, errors.Errorf("fraction %v overflows", v)
	}
	return int64(ticks), nil
}
