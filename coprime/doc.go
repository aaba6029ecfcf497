// Package coprime enumerates coprime pairs of integers up to a limit.
//
// Pairs returns every (x, y) with limit >= x >= y >= 0 and gcd(x, y) = 1.
// The pairs with y >= 1 and x >= 2 form two ternary trees rooted at (2, 1)
// and (3, 1); every node (x, y) has the children
//
//	(2x-y, x), (2x+y, x), (x+2y, y)
//
// and each coprime pair appears in exactly one tree, exactly once. The
// trees are walked breadth-first and a branch is pruned as soon as its first
// component exceeds the limit, since descendants only grow. The two pairs the
// trees cannot reach, (1, 0) and (1, 1), are appended last.
//
// Output order is deterministic: seeds, then breadth-first discovery order,
// then (1, 0) and (1, 1). It is not sorted.
//
// Complexity: O(k) time and memory for k emitted pairs (about 0.3·limit²).
package coprime
