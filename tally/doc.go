// Package tally implements a tiny calculator over non-negative integer
// literals and the four binary operators (+, -, *, /). Expressions are
// folded strictly left to right in the order operators appear; there is
// no operator precedence and no grouping, so `2 + 3 * 4` is 20.
//
// Each call to Evaluate lexes and folds one line of input with fresh
// state, returning an int result, a float result when division occurred,
// or a positioned lexical, syntax, or division-by-zero error.
package tally
