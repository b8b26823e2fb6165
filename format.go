package sqltypes

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Layout is default format of DateTime.
//
// Fractional seconds are printed only when present, so String
// round-trips through Parse.
const Layout = "2006-01-02 15:04:05.999999999"

// parseLayouts are tried by Parse in order.
var parseLayouts = []string{
	Layout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
	// Invariant culture.
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// String returns d formatted with Layout, or empty string for Null.
func (d DateTime) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(Layout)
}

// Text returns d as Text, Null is converted to NullText.
func (d DateTime) Text() Text {
	if !d.valid {
		return NullText
	}
	return NewText(d.String())
}

// Parse parses DateTime from s.
//
// Date, date and time (with optional fraction, "T" separator or time
// zone) and invariant culture "01/02/2006 15:04:05" formats are accepted.
// Time zone, if any, is dropped, see FromTime.
func Parse(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return FromTime(t)
	}
	return Null, errors.Wrapf(firstErr, "parse %q", s)
}

// ParseText parses DateTime from t.
//
// NullText is parsed as Null instead of failing with ErrNull, same as
// CAST(NULL AS datetime).
func ParseText(t Text) (DateTime, error) {
	if t.IsNull() {
		return Null, nil
	}
	return Parse(t.s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	if !d.valid {
		return []byte{}, nil
	}
	return d.t.AppendFormat(make([]byte, 0, len(Layout)), Layout), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Empty text is decoded as Null.
func (d *DateTime) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = Null
		return nil
	}
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
