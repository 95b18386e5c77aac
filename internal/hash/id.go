// Package hash provides xxHash64 fingerprints for column names, observation
// sets and rendered images.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of a byte slice, typically encoded PNG output.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Floats computes a single fingerprint over one or more float64 columns.
//
// Each column is prefixed with its length so that ([1 2], [3]) and ([1], [2 3])
// hash differently. Values are hashed by their IEEE-754 bit patterns, which
// makes NaN payloads and signed zeros significant.
func Floats(columns ...[]float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, col := range columns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])

		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
