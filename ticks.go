package sqltypes

import "time"

// Platform ticks are 100ns intervals since 0001-01-01 00:00:00.
const (
	TicksPerMillisecond = 10_000
	TicksPerSecond      = 1000 * TicksPerMillisecond
	TicksPerMinute      = 60 * TicksPerSecond
	TicksPerHour        = 60 * TicksPerMinute
	TicksPerDay         = 24 * TicksPerHour

	// maxPlatformTicks is 9999-12-31 23:59:59.9999999.
	maxPlatformTicks = 3_155_378_975_999_999_999
	// unixEpochTicks is 1970-01-01 00:00:00 in platform ticks.
	unixEpochTicks = 62_135_596_800 * TicksPerSecond
	nsPerTick      = 100
)

// SQL ticks are 1/300 of a second, the resolution of datetime column.
const (
	SQLTicksPerSecond = 300
	SQLTicksPerMinute = 60 * SQLTicksPerSecond
	SQLTicksPerHour   = 60 * SQLTicksPerMinute
	SQLTicksPerDay    = 24 * SQLTicksPerHour
)

// Epoch1900 is the origin of day and time ticks.
var Epoch1900 = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var epoch1900Ticks = toTicks(Epoch1900)

// toTicks returns platform ticks of t, truncating sub-tick nanoseconds.
func toTicks(t time.Time) int64 {
	return t.Unix()*TicksPerSecond + int64(t.Nanosecond()/nsPerTick) + unixEpochTicks
}

// fromTicks is inverse of toTicks, result is in UTC.
func fromTicks(ticks int64) time.Time {
	sec := floorDiv(ticks, TicksPerSecond)
	rem := ticks - sec*TicksPerSecond
	return time.Unix(sec-unixEpochTicks/TicksPerSecond, rem*nsPerTick).UTC()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// divRoundEven returns n/d rounded to nearest, ties to even.
//
// n must be non-negative and d positive.
func divRoundEven(n, d int64) int64 {
	q, r := n/d, n%d
	if 2*r > d || (2*r == d && q%2 == 1) {
		q++
	}
	return q
}

// sqlTicksToDuration converts time of day in SQL ticks to duration,
// rounding to nearest nanosecond.
func sqlTicksToDuration(ticks int32) time.Duration {
	return time.Duration(divRoundEven(int64(ticks)*int64(time.Second), SQLTicksPerSecond))
}

// durationToSQLTicks converts time of day to SQL ticks, rounding half to even.
func durationToSQLTicks(d time.Duration) int64 {
	return divRoundEven(int64(d)*SQLTicksPerSecond, int64(time.Second))
}
