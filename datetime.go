package sqltypes

import (
	"time"

	"github.com/go-faster/errors"
)

// DateTime represents value of datetime column that can be NULL.
//
// Valid range is [MinValue, MaxValue]; constructors reject values outside
// of it, so non-null DateTime is always in range. The zero value is Null.
//
// DateTime holds wall clock time without time zone, represented as
// time.Time in UTC.
type DateTime struct {
	t     time.Time
	valid bool
}

var (
	minTime = time.Date(1753, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

var (
	// MinValue is minimum value of DateTime, 1753-01-01 00:00:00.
	MinValue = DateTime{t: minTime, valid: true}
	// MaxValue is maximum value of DateTime, 9999-12-31 23:59:59.
	MaxValue = DateTime{t: maxTime, valid: true}
	// Null is DateTime that has no value.
	Null = DateTime{}
)

// checkRange returns *RangeError if t is not in [MinValue, MaxValue].
func checkRange(t time.Time) error {
	if t.Before(minTime) || t.After(maxTime) {
		return rangeErr(t, nil)
	}
	return nil
}

func newDateTime(t time.Time) (DateTime, error) {
	if err := checkRange(t); err != nil {
		return Null, err
	}
	return DateTime{t: t, valid: true}, nil
}

// FromTime returns DateTime of t.
//
// Wall clock of t in its own location is used, location itself is dropped.
func FromTime(t time.Time) (DateTime, error) {
	return newDateTime(time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	))
}

// MustFromTime is FromTime that panics on error.
func MustFromTime(t time.Time) DateTime {
	v, err := FromTime(t)
	if err != nil {
		panic(err)
	}
	return v
}

// FromTicks returns Epoch1900 shifted by dayTicks+timeTicks platform ticks.
//
// NB: the sum is a single raw tick delta, dayTicks is not scaled to days.
// Use FromDaysAndSQLTicks for the day and 1/300s pair.
//
// The sum is computed in int64, so it never wraps around int32.
func FromTicks(dayTicks, timeTicks int32) (DateTime, error) {
	return newDateTime(fromTicks(epoch1900Ticks + int64(dayTicks) + int64(timeTicks)))
}

// FromDaysAndSQLTicks returns DateTime that is days after Epoch1900 plus
// time of day in SQL ticks (1/300 of second).
//
// Ticks must be in [0, SQLTicksPerDay).
func FromDaysAndSQLTicks(days, ticks int32) (DateTime, error) {
	if ticks < 0 || ticks >= SQLTicksPerDay {
		return Null, rangeErr(time.Time{},
			errors.Errorf("time ticks %d not in [0, %d)", ticks, SQLTicksPerDay),
		)
	}
	t := Epoch1900.AddDate(0, 0, int(days)).Add(sqlTicksToDuration(ticks))
	return newDateTime(t)
}

// FromDate returns DateTime of midnight of date.
func FromDate(year int, month time.Month, day int) (DateTime, error) {
	return FromDateTime(year, month, day, 0, 0, 0)
}

// FromDateTime returns DateTime with second precision.
func FromDateTime(year int, month time.Month, day, hour, minute, sec int) (DateTime, error) {
	t, err := wallClock(year, month, day, hour, minute, sec)
	if err != nil {
		return Null, err
	}
	return newDateTime(t)
}

// MustFromDateTime is FromDateTime that panics on error.
func MustFromDateTime(year int, month time.Month, day, hour, minute, sec int) DateTime {
	v, err := FromDateTime(year, month, day, hour, minute, sec)
	if err != nil {
		panic(err)
	}
	return v
}

// FromDateTimeMillis is FromDateTime plus fractional milliseconds.
//
// Milliseconds are rounded to platform ticks (100ns), half to even.
func FromDateTimeMillis(year int, month time.Month, day, hour, minute, sec int, ms float64) (DateTime, error) {
	return fromFraction(year, month, day, hour, minute, sec, func() (int64, error) {
		return fractionTicks(ms, TicksPerMillisecond)
	})
}

// FromDateTimeMicros is FromDateTime plus microseconds.
func FromDateTimeMicros(year int, month time.Month, day, hour, minute, sec, us int) (DateTime, error) {
	return fromFraction(year, month, day, hour, minute, sec, func() (int64, error) {
		return fractionTicks(float64(us), TicksPerMillisecond/1000)
	})
}

func fromFraction(
	year int, month time.Month, day, hour, minute, sec int,
	fraction func() (int64, error),
) (DateTime, error) {
	t, err := wallClock(year, month, day, hour, minute, sec)
	if err != nil {
		return Null, err
	}
	delta, err := fraction()
	if err != nil {
		return Null, rangeErr(time.Time{}, err)
	}
	ticks := toTicks(t) + delta
	if ticks < 0 || ticks > maxPlatformTicks {
		return Null, rangeErr(time.Time{}, errors.Errorf("ticks %d overflow", ticks))
	}
	return newDateTime(fromTicks(ticks))
}

// IsNull reports whether d has no value.
func (d DateTime) IsNull() bool { return !d.valid }

// Valid reports whether d has value.
func (d DateTime) Valid() bool { return d.valid }

// Time returns value of d, or ErrNull if d is Null.
func (d DateTime) Time() (time.Time, error) {
	if !d.valid {
		return time.Time{}, ErrNull
	}
	return d.t, nil
}

// Ticks returns count of 100ns ticks since 0001-01-01.
func (d DateTime) Ticks() (int64, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return toTicks(t), nil
}

// DayTicks returns count of whole days since Epoch1900.
//
// Days before Epoch1900 are negative, partial days are truncated
// toward zero.
func (d DateTime) DayTicks() (int32, error) {
	ticks, err := d.Ticks()
	if err != nil {
		return 0, err
	}
	return int32((ticks - epoch1900Ticks) / TicksPerDay), nil
}

// TimeTicks returns time of day as
//
//	hour*SQLTicksPerHour + minute*SQLTicksPerMinute + second*SQLTicksPerSecond + millisecond
//
// Note that milliseconds are added as is, not converted to SQL ticks.
func (d DateTime) TimeTicks() (int32, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	ms := t.Nanosecond() / int(time.Millisecond)
	return int32(t.Hour()*SQLTicksPerHour +
		t.Minute()*SQLTicksPerMinute +
		t.Second()*SQLTicksPerSecond +
		ms), nil
}

// DaysAndSQLTicks returns days since Epoch1900 and time of day in SQL
// ticks, inverse of FromDaysAndSQLTicks.
//
// Time of day is rounded to nearest SQL tick (half to even), possibly
// carrying over to the next day.
func (d DateTime) DaysAndSQLTicks() (days, ticks int32, err error) {
	t, err := d.Time()
	if err != nil {
		return 0, 0, err
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayCount := (toTicks(midnight) - epoch1900Ticks) / TicksPerDay
	sqlTicks := durationToSQLTicks(t.Sub(midnight))
	if sqlTicks == SQLTicksPerDay {
		dayCount++
		sqlTicks = 0
	}
	return int32(dayCount), int32(sqlTicks), nil
}
