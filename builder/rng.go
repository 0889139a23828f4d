// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// rng.go — derived seeds for repeated generation.
//
// math/rand.Rand is not goroutine-safe; callers that generate many
// instances derive one seed per instance instead of sharing a source.

package builder

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so consecutive streams are uncorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
