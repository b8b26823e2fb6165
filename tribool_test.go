package sqltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriBool(t *testing.T) {
	var zero TriBool
	assert.Equal(t, Unknown, zero)
	assert.Equal(t, True, NewTriBool(true))
	assert.Equal(t, False, NewTriBool(false))

	assert.True(t, True.IsTrue())
	assert.True(t, False.IsFalse())
	assert.True(t, Unknown.IsUnknown())
	assert.False(t, Unknown.IsTrue())
	assert.False(t, Unknown.IsFalse())

	t.Run("Bool", func(t *testing.T) {
		v, err := True.Bool()
		require.NoError(t, err)
		assert.True(t, v)
		v, err = False.Bool()
		require.NoError(t, err)
		assert.False(t, v)
		_, err = Unknown.Bool()
		assert.ErrorIs(t, err, ErrNull)
	})
}

func TestTriBool_Logic(t *testing.T) {
	values := []TriBool{False, Unknown, True}
	t.Run("Not", func(t *testing.T) {
		assert.Equal(t, []TriBool{True, Unknown, False}, []TriBool{
			False.Not(), Unknown.Not(), True.Not(),
		})
	})
	t.Run("And", func(t *testing.T) {
		expected := [3][3]TriBool{
			{False, False, False},
			{False, Unknown, Unknown},
			{False, Unknown, True},
		}
		for i, a := range values {
			for j, b := range values {
				assert.Equal(t, expected[i][j], a.And(b), "%s AND %s", a, b)
			}
		}
	})
	t.Run("Or", func(t *testing.T) {
		expected := [3][3]TriBool{
			{False, Unknown, True},
			{Unknown, Unknown, True},
			{True, True, True},
		}
		for i, a := range values {
			for j, b := range values {
				assert.Equal(t, expected[i][j], a.Or(b), "%s OR %s", a, b)
			}
		}
	})
	t.Run("DeMorgan", func(t *testing.T) {
		for _, a := range values {
			for _, b := range values {
				assert.Equal(t, a.And(b).Not(), a.Not().Or(b.Not()))
			}
		}
	})
}

func TestTriBool_String(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "False", False.String())
	assert.Equal(t, "True", True.String())
	assert.Equal(t, "TriBool(10)", TriBool(10).String())
	assert.False(t, TriBool(10).IsATriBool())

	for _, v := range TriBoolValues() {
		assert.True(t, v.IsATriBool())
		parsed, err := TriBoolString(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	parsed, err := TriBoolString("TRUE")
	require.NoError(t, err)
	assert.Equal(t, True, parsed)

	_, err = TriBoolString("maybe")
	assert.Error(t, err)
	assert.Equal(t, []string{"Unknown", "False", "True"}, TriBoolStrings())
}
