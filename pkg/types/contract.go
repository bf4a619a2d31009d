package types

import (
	"fmt"
	"strconv"
)

// ContractYears is the fixed number of year slots in a contract schedule.
const ContractYears = 10

// Contract is a player's ten-slot salary schedule. Unused years hold zero;
// there is no sparse form.
type Contract struct {
	Years       [ContractYears]int64 `json:"years"`
	CurrentYear int                  `json:"current_year"`
}

// NewContract builds a schedule starting at year zero from the guaranteed
// amounts. An empty amounts slice is a minor-league deal.
func NewContract(amounts []int64) (Contract, error) {
	var c Contract
	if len(amounts) > ContractYears {
		return c, fmt.Errorf("%w: %d years", ErrContractTooLong, len(amounts))
	}
	for i, a := range amounts {
		if a < 0 {
			return c, fmt.Errorf("%w: year %d is %d", ErrNegativeAmount, i+1, a)
		}
		c.Years[i] = a
	}
	return c, nil
}

// Length returns the number of years up to and including the last non-zero
// amount.
func (c Contract) Length() int {
	for i := ContractYears - 1; i >= 0; i-- {
		if c.Years[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// Total returns the sum of all year amounts.
func (c Contract) Total() int64 {
	var sum int64
	for _, y := range c.Years {
		sum += y
	}
	return sum
}

// Fields returns the column assignments that write c into a roster row.
func (c Contract) Fields() map[string]string {
	out := make(map[string]string, ContractYears+1)
	for i, y := range c.Years {
		out[ContractColumn(i+1)] = strconv.FormatInt(y, 10)
	}
	out[ColContractCurrentYear] = strconv.Itoa(c.CurrentYear)
	return out
}

// ContractFromRow reads the contract columns of r. Empty fields read as zero.
func ContractFromRow(r Row) (Contract, error) {
	var c Contract
	for i := range c.Years {
		v := r.Get(ContractColumn(i + 1))
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("row %d contract y%d: %w", r.Pos, i+1, err)
		}
		c.Years[i] = n
	}
	if v := r.Get(ColContractCurrentYear); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("row %d contract current year: %w", r.Pos, err)
		}
		c.CurrentYear = n
	}
	return c, nil
}
