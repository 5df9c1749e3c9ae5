package network

import (
	"fmt"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
)

func RecoverFunc(p RecoverPolicy) (datastructure.RecoverFunc, error) {
	switch p.Policy {
	case PolicyRefill:
		costPerUnit := p.CostPerUnit
		return func(current, capacity float64) (float64, float64) {
			amount := capacity - current
			if amount < 0 {
				amount = 0
			}
			return amount, amount * costPerUnit
		}, nil
	case PolicyFixed:
		if p.Amount < 0 {
			return nil, fmt.Errorf("%w: negative recover amount", ErrInvalidDocument)
		}
		amount, cost := p.Amount, p.Cost
		return func(_, _ float64) (float64, float64) {
			return amount, cost
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown recover policy %q", ErrInvalidDocument, p.Policy)
}

// SurchargeCost extra cost kalau supply resource setelah consume < Below.
func SurchargeCost(s Surcharge) datastructure.ExtraCostFunc {
	return func(supplies, _, _ datastructure.Supplies, isFinalStep bool) float64 {
		if s.FinalOnly && !isFinalStep {
			return 0
		}
		if supplies[s.Resource] < s.Below {
			return s.Cost
		}
		return 0
	}
}
