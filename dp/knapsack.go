package dp

import (
	"math"
	"math/big"
)

// unreachable marks amounts no coin combination can form.
const unreachable = math.MaxInt

// CoinChange returns the fewest coins from the (unlimited) denominations
// that sum to amount, or -1 if no combination does. Non-positive coins are
// ignored. amount 0 needs 0 coins; a negative amount is unreachable.
func CoinChange(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}
	t := Tabulate(amount+1, 0, func(t []int, i int) int {
		best := unreachable
		for _, c := range coins {
			if c <= 0 || c > i || t[i-c] == unreachable {
				continue
			}
			best = min(best, t[i-c]+1)
		}
		return best
	})
	if t[amount] == unreachable {
		return -1
	}

	return t[amount]
}

// bitsetLimit bounds the half-sum CanPartition tracks with a dense bitset.
// Larger targets switch to a sparse set of reachable sums.
const bitsetLimit = 1 << 24

// CanPartition reports whether nums can be split into two subsets with equal
// sums. Bit k of the running set is 1 iff some subset sums to k; each value
// shifts and ORs the set once. When half the total exceeds bitsetLimit the
// reachable sums are kept in a map instead, so a few huge values cost memory
// per distinct subset sum rather than per unit of value.
//
// Negative values are outside the problem's domain and yield false, as does a
// total that overflows int. An empty slice splits into two empty halves.
func CanPartition(nums []int) bool {
	sum := 0
	for _, x := range nums {
		if x < 0 || x > math.MaxInt-sum {
			return false
		}
		sum += x
	}
	if sum%2 != 0 {
		return false
	}
	half := sum / 2
	if half > bitsetLimit {
		return sparsePartition(nums, half)
	}

	reach := big.NewInt(1) // only the empty subset, sum 0
	shifted := new(big.Int)
	for _, x := range nums {
		shifted.Lsh(reach, uint(x))
		reach.Or(reach, shifted)
	}

	return reach.Bit(half) == 1
}

// sparsePartition tracks reachable subset sums up to half in a set.
func sparsePartition(nums []int, half int) bool {
	reach := map[int]struct{}{0: {}}
	for _, x := range nums {
		next := make([]int, 0, len(reach))
		for s := range reach {
			if t := s + x; t <= half {
				next = append(next, t)
			}
		}
		for _, t := range next {
			if t == half {
				return true
			}
			reach[t] = struct{}{}
		}
	}
	_, ok := reach[half]

	return ok
}
