package compress

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies a compression algorithm.
type Type uint8

const (
	// TypeNone leaves data untouched.
	TypeNone Type = iota + 1
	// TypeZstd is Zstandard.
	TypeZstd
	// TypeS2 is the S2 block format, a Snappy extension.
	TypeS2
	// TypeLZ4 is the LZ4 block format.
	TypeLZ4
)

var typeNames = map[Type]string{
	TypeNone: "None",
	TypeZstd: "Zstd",
	TypeS2:   "S2",
	TypeLZ4:  "LZ4",
}

// String returns the name of the compression type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ErrUnsupportedType is returned for compression types without a codec.
var ErrUnsupportedType = errors.New("unsupported compression type")

// ParseType maps a case-insensitive name ("none", "zstd", "s2", "lz4") to a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller. The input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared codec for t.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// Stats describes one compression or decompression of a file.
type Stats struct {
	// Algorithm is the codec that was applied.
	Algorithm Type
	// OriginalSize is the uncompressed size in bytes.
	OriginalSize int64
	// CompressedSize is the size on disk in bytes.
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1.0 - s.Ratio()) * 100.0
}
