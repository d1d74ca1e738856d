// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package annotate

import "math"

// =============================================================================
// STAR DECOMPOSITION
// =============================================================================

// Stars decomposes a five-point rating into full, half and empty star
// counts. A fractional part of 0.5 or more earns a half star. Values are
// clamped to the 0-5 range first, so full+half+empty is always 5.
func Stars(value float64) (full, half, empty int) {
	if value < 0 || math.IsNaN(value) {
		value = 0
	}
	if value > 5 {
		value = 5
	}

	full = int(math.Floor(value))
	if value-float64(full) >= 0.5 {
		half = 1
	}
	empty = 5 - full - half
	return full, half, empty
}
