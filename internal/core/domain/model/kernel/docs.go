// Package kernel contains the value objects shared by every aggregate of the dispatch domain.
//
//   - Location: a cell of the 10x10 grid with Manhattan distance
//   - UUID: an identifier that cannot be nil
//   - RandomSource: the injected randomness used to place new orders
//
// All types are immutable once constructed. Their zero values are invalid and report a
// ValueIsRequiredError from Validate.
package kernel
