package budgeting

import (
	"sort"

	"orcamento_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// allocate splits total (in integer units) proportionally to weights using the
// largest-remainder method, so the parts always sum to total exactly.
// Ties on the remainder go to the earlier index.
func allocate(total int64, weights []decimal.Decimal) []int64 {
	out := make([]int64, len(weights))
	if len(weights) == 0 {
		return out
	}

	sum := decimal.Zero
	for _, w := range weights {
		if w.IsPositive() {
			sum = sum.Add(w)
		}
	}
	if !sum.IsPositive() {
		out[len(out)-1] = total
		return out
	}

	type remainder struct {
		idx  int
		frac decimal.Decimal
	}
	rems := make([]remainder, len(weights))
	assigned := int64(0)
	totalDec := decimal.NewFromInt(total)
	for i, w := range weights {
		if !w.IsPositive() {
			rems[i] = remainder{idx: i, frac: decimal.Zero}
			continue
		}
		exact := totalDec.Mul(w).Div(sum)
		floor := exact.Floor()
		out[i] = floor.IntPart()
		assigned += out[i]
		rems[i] = remainder{idx: i, frac: exact.Sub(floor)}
	}

	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac.GreaterThan(rems[b].frac)
	})
	for left, i := total-assigned, 0; left > 0; left, i = left-1, i+1 {
		out[rems[i%len(rems)].idx]++
	}
	return out
}

func allocateMoney(total entities.Money, weights []decimal.Decimal) []entities.Money {
	parts := allocate(int64(total), weights)
	out := make([]entities.Money, len(parts))
	for i, p := range parts {
		out[i] = entities.Money(p)
	}
	return out
}

// percentagesOf converts amounts into basis points summing to exactly 10000.
func percentagesOf(amounts []entities.Money) []entities.BasisPoints {
	weights := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		weights[i] = decimal.NewFromInt(int64(a))
	}
	parts := allocate(int64(entities.FullBasisPoints), weights)
	out := make([]entities.BasisPoints, len(parts))
	for i, p := range parts {
		out[i] = entities.BasisPoints(p)
	}
	return out
}

// roundHalfUp rounds a non-negative decimal to the nearest integer.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
