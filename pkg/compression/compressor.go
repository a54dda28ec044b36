// Package compression wraps output streams with a compression algorithm.
//
// # Algorithm Selection
//
//   - Snappy/S2: fast, moderate compression
//   - LZ4: fastest, decent compression
//   - Zstd: best ratio, good speed
//   - Gzip/Deflate: widest support
//
// # Basic Usage
//
//	w, err := compression.NewWriter(file, compression.Config{
//	    Algorithm: compression.Zstd,
//	    Level:     compression.Better,
//	})
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
// Closing the writer flushes the compressed stream; it does not close the
// destination.
package compression

import (
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None writes the stream unchanged
	None    Algorithm = "none"
	Gzip    Algorithm = "gzip"
	Snappy  Algorithm = "snappy"
	LZ4     Algorithm = "lz4"
	Zstd    Algorithm = "zstd"
	S2      Algorithm = "s2"
	Deflate Algorithm = "deflate"
)

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{None, Gzip, Snappy, LZ4, Zstd, S2, Deflate}
}

// ParseAlgorithm resolves a case-insensitive algorithm name. An empty name
// is None.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return None, nil
	}
	for _, a := range Algorithms() {
		if a == name {
			return a, nil
		}
	}
	return "", errors.Newf(errors.ErrorTypeConfig, "unsupported compression algorithm: %s", s).
		WithDetail("supported", Algorithms())
}

// Extension returns the file suffix conventionally used for a.
func (a Algorithm) Extension() string {
	switch a {
	case Gzip:
		return ".gz"
	case Snappy:
		return ".sz"
	case LZ4:
		return ".lz4"
	case Zstd:
		return ".zst"
	case S2:
		return ".s2"
	case Deflate:
		return ".deflate"
	default:
		return ""
	}
}

// Level represents compression level, controlling the trade-off between
// compression speed and compression ratio.
type Level int

const (
	// Fastest prioritizes speed over compression ratio.
	Fastest Level = 1
	// Default balances speed and compression.
	Default Level = 5
	// Better improves compression at cost of speed.
	Better Level = 7
	// Best maximizes compression ratio.
	Best Level = 9
)

var levelNames = map[string]Level{
	"fastest": Fastest,
	"default": Default,
	"better":  Better,
	"best":    Best,
}

// ParseLevel accepts a level name or a number from 1 to 9. An empty string
// is Default.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	if l, ok := levelNames[s]; ok {
		return l, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9 {
		return 0, errors.Newf(errors.ErrorTypeConfig, "invalid compression level %q", s).
			WithDetail("expected", "fastest, default, better, best or 1-9")
	}
	return Level(n), nil
}

func (l Level) String() string {
	for name, v := range levelNames {
		if v == l {
			return name
		}
	}
	return strconv.Itoa(int(l))
}

// Config represents compressor configuration.
type Config struct {
	Algorithm Algorithm
	Level     Level
	// Concurrency bounds the encoder goroutines of zstd, s2 and lz4; zero
	// means GOMAXPROCS.
	Concurrency int
}

// DefaultConfig returns an uncompressed configuration.
func DefaultConfig() Config {
	return Config{Algorithm: None, Level: Default}
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// NewWriter returns a writer compressing into dst.
func NewWriter(dst io.Writer, config Config) (io.WriteCloser, error) {
	switch config.Algorithm {
	case None, "":
		return nopWriteCloser{dst}, nil
	case Gzip:
		w, err := gzip.NewWriterLevel(dst, mapGzipLevel(config.Level))
		if err != nil {
			return nil, wrapInit(err, config)
		}
		return w, nil
	case Snappy:
		return snappy.NewBufferedWriter(dst), nil
	case LZ4:
		w := lz4.NewWriter(dst)
		if err := w.Apply(
			lz4.CompressionLevelOption(mapLZ4Level(config.Level)),
			lz4.ConcurrencyOption(config.concurrency()),
		); err != nil {
			return nil, wrapInit(err, config)
		}
		return w, nil
	case Zstd:
		enc, err := zstd.NewWriter(dst,
			zstd.WithEncoderLevel(mapZstdLevel(config.Level)),
			zstd.WithEncoderConcurrency(config.concurrency()))
		if err != nil {
			return nil, wrapInit(err, config)
		}
		return enc, nil
	case S2:
		opts := []s2.WriterOption{s2.WriterConcurrency(config.concurrency())}
		switch {
		case config.Level >= Best:
			opts = append(opts, s2.WriterBestCompression())
		case config.Level >= Better:
			opts = append(opts, s2.WriterBetterCompression())
		}
		return s2.NewWriter(dst, opts...), nil
	case Deflate:
		w, err := flate.NewWriter(dst, mapDeflateLevel(config.Level))
		if err != nil {
			return nil, wrapInit(err, config)
		}
		return w, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeConfig, "unsupported compression algorithm: %s", config.Algorithm)
	}
}

// NewReader returns a reader decompressing src, written by NewWriter with
// the same algorithm.
func NewReader(src io.Reader, algorithm Algorithm) (io.ReadCloser, error) {
	switch algorithm {
	case None, "":
		return io.NopCloser(src), nil
	case Gzip:
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeOutput, "failed to open gzip stream")
		}
		return r, nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(src)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(src)), nil
	case Zstd:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeOutput, "failed to open zstd stream")
		}
		return dec.IOReadCloser(), nil
	case S2:
		return io.NopCloser(s2.NewReader(src)), nil
	case Deflate:
		return flate.NewReader(src), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeConfig, "unsupported compression algorithm: %s", algorithm)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func wrapInit(err error, config Config) error {
	return errors.Wrapf(err, errors.ErrorTypeConfig, "failed to create %s writer", config.Algorithm).
		WithDetail("level", config.Level.String())
}

// Helper functions to map compression levels

func mapGzipLevel(level Level) int {
	switch level {
	case Fastest:
		return gzip.BestSpeed
	case Best:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func mapLZ4Level(level Level) lz4.CompressionLevel {
	switch level {
	case Fastest:
		return lz4.Fast
	case Best:
		return lz4.Level9
	default:
		return lz4.Level5
	}
}

func mapZstdLevel(level Level) zstd.EncoderLevel {
	switch level {
	case Fastest:
		return zstd.SpeedFastest
	case Better:
		return zstd.SpeedBetterCompression
	case Best:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

func mapDeflateLevel(level Level) int {
	switch level {
	case Fastest:
		return flate.BestSpeed
	case Best:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}
