package frac_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/frac"
)

var New = frac.New

func TestNew_literal(t *testing.T) {
	x := New(2, 4)
	assert.Equal(t, int64(2), x.Num())
	assert.Equal(t, int64(4), x.Den())
	assert.NotEqual(t, New(1, 2), x, "== compares fields, not values")
	assert.Equal(t, 0, x.Cmp(New(1, 2)))
}

func TestFraction_IsImproper(t *testing.T) {
	assert.True(t, New(7, 5).IsImproper())
	assert.True(t, New(-7, 5).IsImproper())
	assert.False(t, New(5, 7).IsImproper())
	assert.False(t, New(5, 5).IsImproper())
	assert.False(t, New(-1, 3).IsImproper())
}

func TestFraction_HasZeroDen(t *testing.T) {
	assert.True(t, New(2, 0).HasZeroDen())
	assert.False(t, New(2, 3).HasZeroDen())
}

func TestFraction_Sign(t *testing.T) {
	assert.Equal(t, 0, New(0, 5).Sign())
	assert.Equal(t, 1, New(1, 5).Sign())
	assert.Equal(t, -1, New(-1, 5).Sign())
	assert.Equal(t, -1, New(1, -5).Sign())
	assert.Equal(t, 1, New(-1, -5).Sign())
}

func TestFraction_Neg(t *testing.T) {
	assert.Equal(t, New(-3, 4), New(3, 4).Neg())
	assert.PanicsWithValue(t, frac.ErrNumOverflow, func() {
		New(math.MinInt64, 1).Neg()
	})
}

func TestFraction_Cmp(t *testing.T) {
	assert.Equal(t, -1, New(1, 3).Cmp(New(1, 2)))
	assert.Equal(t, 1, New(-1, 3).Cmp(New(-1, 2)))
	assert.Equal(t, 0, New(-2, 4).Cmp(New(1, -2)))
}

func TestFraction_String(t *testing.T) {
	assert.Equal(t, "-18/33", New(-18, 33).String())
	assert.Equal(t, "5/0", New(5, 0).String())
}

func TestFromBigRat(t *testing.T) {
	x, err := frac.FromBigRat(big.NewRat(6, 8))
	require.NoError(t, err)
	assert.Equal(t, New(3, 4), x)
	assert.Equal(t, 0, x.BigRat().Cmp(big.NewRat(3, 4)))

	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = frac.FromBigRat(new(big.Rat).SetFrac(huge, big.NewInt(3)))
	assert.ErrorIs(t, err, frac.ErrNumOverflow)
	_, err = frac.FromBigRat(new(big.Rat).SetFrac(big.NewInt(1), huge))
	assert.ErrorIs(t, err, frac.ErrDenOverflow)
}
