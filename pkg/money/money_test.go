package money_test

import (
	"encoding/json"
	"testing"

	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := money.Parse("15000.50")
	require.NoError(t, err)
	assert.Equal(t, "15000.5", m.String())

	_, err = money.Parse("abc")
	assert.ErrorIs(t, err, money.ErrMalformedAmount)

	_, err = money.Parse("")
	assert.ErrorIs(t, err, money.ErrMalformedAmount)
}

func TestArithmetic(t *testing.T) {
	a := money.MustParse("100000")
	b := money.MustParse("25000")

	assert.Equal(t, "125000", a.Add(b).String())
	assert.Equal(t, "75000", a.Sub(b).String())
	assert.Equal(t, "75000", b.MulInt(3).String())
	assert.Equal(t, "40000", a.MulRate(money.MustParse("0.4")).String())
}

func TestNoBinaryFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must stay exact
	sum := money.MustParse("0.1").Add(money.MustParse("0.2"))
	assert.True(t, sum.Equal(money.MustParse("0.3")))
}

func TestComparisons(t *testing.T) {
	a := money.MustParse("100")
	b := money.MustParse("200")

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, a.Equal(money.MustParse("100.00")))

	assert.True(t, money.Zero.IsZero())
	assert.True(t, money.MustParse("-5").IsNegative())
	assert.True(t, money.MustParse("5").IsPositive())
}

func TestRound0(t *testing.T) {
	assert.Equal(t, "40001", money.MustParse("40000.5").Round0().String())
	assert.Equal(t, "40000", money.MustParse("40000.4").Round0().String())
}

func TestJSON(t *testing.T) {
	raw, err := json.Marshal(money.MustParse("99000"))
	require.NoError(t, err)
	assert.Equal(t, `"99000"`, string(raw))

	var m money.Money
	require.NoError(t, json.Unmarshal([]byte(`"12500.75"`), &m))
	assert.Equal(t, "12500.75", m.String())

	// Bare numbers are accepted for lenient clients
	require.NoError(t, json.Unmarshal([]byte(`300`), &m))
	assert.Equal(t, "300", m.String())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &m))
}

func TestScan(t *testing.T) {
	var m money.Money
	require.NoError(t, m.Scan("42000.10"))
	assert.Equal(t, "42000.1", m.String())

	require.NoError(t, m.Scan(int64(7000)))
	assert.Equal(t, "7000", m.String())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())
}
