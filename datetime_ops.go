package sqltypes

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/go-faster/city"
)

// compare returns Unknown if x or y is Null, otherwise result of cmp.
func compare(x, y DateTime, cmp func(a, b time.Time) bool) TriBool {
	if !x.valid || !y.valid {
		return Unknown
	}
	return NewTriBool(cmp(x.t, y.t))
}

// Eq returns x = y.
func Eq(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return a.Equal(b) })
}

// Ne returns x <> y.
func Ne(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return !a.Equal(b) })
}

// Lt returns x < y.
func Lt(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return a.Before(b) })
}

// Le returns x <= y.
func Le(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return !a.After(b) })
}

// Gt returns x > y.
func Gt(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return a.After(b) })
}

// Ge returns x >= y.
func Ge(x, y DateTime) TriBool {
	return compare(x, y, func(a, b time.Time) bool { return !a.Before(b) })
}

// Equals reports whether d and v are identical.
//
// Unlike Eq, Null equals Null.
func (d DateTime) Equals(v DateTime) bool {
	if !d.valid || !v.valid {
		return d.valid == v.valid
	}
	return d.t.Equal(v.t)
}

// Hash returns hash of d that is consistent with Equals.
func (d DateTime) Hash() uint64 {
	// Last byte tags valid values, so Null differs from Unix epoch.
	var buf [13]byte
	if d.valid {
		binary.LittleEndian.PutUint64(buf[:8], uint64(d.t.Unix()))
		binary.LittleEndian.PutUint32(buf[8:12], uint32(d.t.Nanosecond()))
		buf[12] = 1
	}
	return city.Hash64(buf[:])
}

// Compare returns -1, 0 or +1 if d is less, equal or greater than v.
//
// Null is greater than any other value, so nulls are sorted last.
func (d DateTime) Compare(v DateTime) int {
	switch {
	case !d.valid && !v.valid:
		return 0
	case !d.valid:
		return 1
	case !v.valid:
		return -1
	}
	return d.t.Compare(v.t)
}

// Compare is DateTime.Compare as function, e.g. for slices.SortFunc.
func Compare(a, b DateTime) int {
	return a.Compare(b)
}

// Add returns d+v, Null stays Null.
func (d DateTime) Add(v time.Duration) (DateTime, error) {
	if !d.valid {
		return Null, nil
	}
	return newDateTime(d.t.Add(v))
}

// Sub returns d-v, Null stays Null.
func (d DateTime) Sub(v time.Duration) (DateTime, error) {
	if !d.valid {
		return d, nil
	}
	if v == math.MinInt64 {
		return newDateTime(d.t.Add(math.MaxInt64).Add(1))
	}
	return newDateTime(d.t.Add(-v))
}

// Add returns x+v.
func Add(x DateTime, v time.Duration) (DateTime, error) { return x.Add(v) }

// Sub returns x-v.
func Sub(x DateTime, v time.Duration) (DateTime, error) { return x.Sub(v) }
