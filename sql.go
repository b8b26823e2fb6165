package sqltypes

import (
	"database/sql"
	"database/sql/driver"
	"time"

	"github.com/go-faster/errors"
)

var (
	_ sql.Scanner   = (*DateTime)(nil)
	_ driver.Valuer = DateTime{}
)

// Scan implements sql.Scanner.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Null
		return nil
	case time.Time:
		dt, err := FromTime(v)
		if err != nil {
			return errors.Wrap(err, "scan")
		}
		*d = dt
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return errors.Errorf("scan: unsupported type %T", src)
	}
}

// Value implements driver.Valuer, Null is nil.
func (d DateTime) Value() (driver.Value, error) {
	if !d.valid {
		return nil, nil
	}
	return d.t, nil
}
