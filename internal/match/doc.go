// Package match finds the known name closest to a misspelled one.
//
// Key functions:
//   - Normalize: folds case and drops separators, so "max_depth" and "MaxDepth" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders known names by similarity to an input
//   - Suggest: returns the best known name when it is similar enough
package match
