// Package ruleset defines sentinel errors for ruleset construction.
package ruleset

import "errors"

// Sentinel errors for ruleset construction and validation.
var (
	// ErrTableShape indicates a rule table whose extents do not fit the
	// ruleset being constructed (e.g. a non-square adjacency table, or a
	// label table whose row count disagrees with the tile universe).
	ErrTableShape = errors.New("ruleset: rule table has invalid shape")

	// ErrTableSymmetry indicates an adjacency table that is not symmetric
	// across dual relation pairs.
	ErrTableSymmetry = errors.New("ruleset: rule table is not dual-symmetric")
)
