// Package compress provides the block codecs used to read compressed
// measurement tables and to write compressed fit reports.
//
// Four codecs are available:
//
//   - None: pass-through, used for plain .csv files
//   - Zstd: .zst and .zstd files, standard Zstandard frames
//   - S2:   .s2 files, S2 block format
//   - LZ4:  .lz4 files, LZ4 block format
//
// The codec for a file is chosen by its extension with TypeFromPath, so
// callers normally only use ReadFile and WriteFile:
//
//	data, err := compress.ReadFile("runtimes.csv.zst")
//	if err != nil {
//	    return err
//	}
//
// The Zstd codec uses github.com/klauspost/compress/zstd by default. Build
// with the gozstd tag to use the cgo binding github.com/valyala/gozstd instead.
// Both produce interchangeable frames.
//
// All codecs are safe for concurrent use.
package compress
