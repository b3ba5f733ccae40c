// Package dp implements dynamic-programming solvers that share one
// "tabulate then answer" shape.
//
// What:
//
//   - Tabulate / Tabulate2D: bottom-up fill of a 1-D or 2-D state table.
//     The caller supplies the table shape and a transition; every cell is
//     computed exactly once, in index order, from cells already filled.
//   - Knapsack family: CoinChange (unbounded, fewest coins), CanPartition
//     (0/1 subset sum as a big.Int bitset).
//   - Sequence family: Rob, LengthOfLIS (patience sorting) and
//     LengthOfLISQuadratic (tabulated), CanJump, NumDecodings, WordBreak.
//   - Grid/string family: UniquePaths, CountPalindromes, IsMatch ('.' and
//     '*' regular expressions, anchored at both ends).
//
// Conventions:
//
//   - Impossible results are sentinel values, not errors: CoinChange
//     returns -1, counts return 0, predicates return false.
//   - Strings are scanned as runes, except WordBreak and NumDecodings which
//     work on bytes (dictionary words and ASCII digits).
//
// Complexity:
//
//   - CoinChange:   Time O(amount·len(coins)), Memory O(amount)
//   - CanPartition: Time O(n·sum/w),           Memory O(sum/w)  (w = word size)
//   - LengthOfLIS:  Time O(n log n); LengthOfLISQuadratic O(n²)
//   - IsMatch:      Time O(|s|·|p|),           Memory O(|s|·|p|)
package dp
