package compress

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var extensionTypes = map[string]Type{
	".zst":  TypeZstd,
	".zstd": TypeZstd,
	".s2":   TypeS2,
	".lz4":  TypeLZ4,
}

// TypeFromPath selects a compression type from the final file extension.
// Unknown extensions map to TypeNone.
func TypeFromPath(path string) Type {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return TypeNone
}

// TrimExtension strips a recognized compression extension, so
// "runs.csv.zst" becomes "runs.csv".
func TrimExtension(path string) string {
	ext := filepath.Ext(path)
	if _, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(path, ext)
	}

	return path
}

// ReadFile reads path and decompresses it according to its extension.
func ReadFile(path string) ([]byte, Stats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to read file: %w", err)
	}

	t := TypeFromPath(path)
	codec, err := GetCodec(t)
	if err != nil {
		return nil, Stats{}, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to decompress %s as %s: %w", path, t, err)
	}

	return data, Stats{Algorithm: t, OriginalSize: int64(len(data)), CompressedSize: int64(len(raw))}, nil
}

// WriteFile compresses data according to the extension of path and writes it.
func WriteFile(path string, data []byte) (Stats, error) {
	t := TypeFromPath(path)
	codec, err := GetCodec(t)
	if err != nil {
		return Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to compress %s as %s: %w", path, t, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return Stats{}, fmt.Errorf("failed to write file: %w", err)
	}

	return Stats{Algorithm: t, OriginalSize: int64(len(data)), CompressedSize: int64(len(out))}, nil
}
