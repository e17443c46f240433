// SPDX-License-Identifier: MIT

package builder

// Concat returns a new slice holding v1 followed by v2. Neither input is
// aliased; the result is non-nil even when both inputs are empty.
// Complexity: O(len(v1)+len(v2)).
func Concat[T any](v1, v2 []T) []T {
	out := make([]T, 0, len(v1)+len(v2))
	out = append(out, v1...)

	return append(out, v2...)
}

// Cat returns a new slice holding val followed by v.
// Complexity: O(len(v)).
func Cat[T any](val T, v []T) []T {
	out := make([]T, 0, len(v)+1)
	out = append(out, val)

	return append(out, v...)
}
