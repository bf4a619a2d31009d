package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContract(t *testing.T) {
	t.Run("zero fills unused years", func(t *testing.T) {
		c, err := NewContract([]int64{30000000, 30000000})
		require.NoError(t, err)
		assert.Equal(t, int64(30000000), c.Years[0])
		assert.Equal(t, int64(30000000), c.Years[1])
		for i := 2; i < ContractYears; i++ {
			assert.Zero(t, c.Years[i])
		}
		assert.Zero(t, c.CurrentYear)
		assert.Equal(t, 2, c.Length())
		assert.Equal(t, int64(60000000), c.Total())
	})

	t.Run("minor league deal is all zeros", func(t *testing.T) {
		c, err := NewContract(nil)
		require.NoError(t, err)
		assert.Equal(t, Contract{}, c)
		assert.Equal(t, 0, c.Length())
	})

	t.Run("more than ten years rejected", func(t *testing.T) {
		_, err := NewContract(make([]int64, 11))
		assert.ErrorIs(t, err, ErrContractTooLong)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewContract([]int64{1, -5})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}

func TestContractFields(t *testing.T) {
	c, err := NewContract([]int64{500000})
	require.NoError(t, err)
	c.CurrentYear = 3

	f := c.Fields()
	assert.Len(t, f, ContractYears+1)
	assert.Equal(t, "500000", f["contract y1"])
	assert.Equal(t, "0", f["contract y10"])
	assert.Equal(t, "3", f[ColContractCurrentYear])
}

func TestContractFromRow(t *testing.T) {
	s := RosterSchema()
	values := make([]string, s.Len())
	i, _ := s.Index(ContractColumn(1))
	values[i] = "750000"
	i, _ = s.Index(ContractColumn(2))
	values[i] = "800000"
	i, _ = s.Index(ColContractCurrentYear)
	values[i] = "1"

	r, err := NewRow(0, values, s)
	require.NoError(t, err)

	c, err := ContractFromRow(r)
	require.NoError(t, err)
	assert.Equal(t, int64(750000), c.Years[0])
	assert.Equal(t, int64(800000), c.Years[1])
	assert.Equal(t, 1, c.CurrentYear)

	i, _ = s.Index(ContractColumn(3))
	values[i] = "lots"
	_, err = ContractFromRow(r)
	assert.Error(t, err)
}
