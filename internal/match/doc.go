// Package match ranks registered names by similarity to a name that failed
// to resolve, for "did you mean" hints.
//
// Key functions:
//   - NormalizeName: folds case and separators of a dotted type name
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores candidate names against a query
package match
