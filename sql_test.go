package sqltypes

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_Scan(t *testing.T) {
	expected := MustFromDateTime(2011, 10, 10, 14, 59, 31)
	for _, tc := range []struct {
		Name string
		Src  any
	}{
		{"Time", time.Date(2011, 10, 10, 14, 59, 31, 0, time.UTC)},
		{"String", "2011-10-10 14:59:31"},
		{"Bytes", []byte("2011-10-10T14:59:31")},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			var v DateTime
			require.NoError(t, v.Scan(tc.Src))
			assert.True(t, expected.Equals(v))
		})
	}
	t.Run("Nil", func(t *testing.T) {
		v := MinValue
		require.NoError(t, v.Scan(nil))
		assert.True(t, v.IsNull())
	})
	t.Run("OutOfRange", func(t *testing.T) {
		var v DateTime
		requireRange(t, v.Scan(time.Time{}))
	})
	t.Run("Unsupported", func(t *testing.T) {
		var v DateTime
		assert.Error(t, v.Scan(42))
	})
}

func TestDateTime_Value(t *testing.T) {
	v, err := Null.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = MinValue.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value(minTime), v)
	assert.True(t, driver.IsValue(v))
}
