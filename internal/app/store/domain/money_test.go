package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(4500, 100)
		require.NoError(t, err)
		assert.Equal(t, "45.00", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, "25.50", FromCents(2550).String())
	assert.Equal(t, "0.00", FromCents(0).String())
	assert.Equal(t, int64(2550), FromCents(2550).Cents())
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		result := FromCents(2550).Add(FromCents(599))
		assert.Equal(t, "31.49", result.String())
	})

	t.Run("sub", func(t *testing.T) {
		result := FromCents(5000).Sub(FromCents(599))
		assert.Equal(t, "44.01", result.String())
	})

	t.Run("mul int", func(t *testing.T) {
		result := FromCents(1275).MulInt(2)
		assert.Equal(t, "25.50", result.String())
	})

	t.Run("mul rat keeps full precision", func(t *testing.T) {
		// 25.50 * 8% = 2.04 exactly
		result := FromCents(2550).MulRat(TaxRate)
		assert.Equal(t, "2.04", result.String())
	})
}

func TestMoney_RoundTo(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		// 0.125 -> 0.13, not banker's 0.12
		m, err := NewMoney(125, 1000)
		require.NoError(t, err)
		assert.Equal(t, "0.13", m.RoundTo(2).String())
	})

	t.Run("negative half rounds away from zero", func(t *testing.T) {
		m, err := NewMoney(-125, 1000)
		require.NoError(t, err)
		assert.Equal(t, "-0.13", m.RoundTo(2).String())
	})

	t.Run("already exact is unchanged", func(t *testing.T) {
		assert.Equal(t, "2.04", FromCents(204).RoundTo(2).String())
	})

	t.Run("rounds down below the midpoint", func(t *testing.T) {
		m, err := NewMoney(1234, 1000) // 1.234
		require.NoError(t, err)
		assert.Equal(t, "1.23", m.RoundTo(2).String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := FromCents(5000)
	b := FromCents(4999)

	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equals(FromCents(5000)))
	assert.False(t, a.Equals(b))
	assert.True(t, Zero().IsZero())
	assert.True(t, FromCents(-1).IsNegative())
}

func TestMoney_Copy(t *testing.T) {
	original := FromCents(2550)
	cp := original.Copy()

	modified := cp.Add(FromCents(100))
	assert.Equal(t, "25.50", original.String())
	assert.Equal(t, "26.50", modified.String())
}

func TestMoney_JSON(t *testing.T) {
	t.Run("marshals as bare decimal", func(t *testing.T) {
		data, err := json.Marshal(FromCents(599))
		require.NoError(t, err)
		assert.Equal(t, "5.99", string(data))
	})

	t.Run("unmarshals bare number", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte("25.50"), &m))
		assert.Equal(t, int64(2550), m.Cents())
	})

	t.Run("unmarshals quoted number", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`"5.99"`), &m))
		assert.Equal(t, int64(599), m.Cents())
	})

	t.Run("rejects null", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte("null"), &m))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}
