package compression

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	original := []byte(strings.Repeat("\"山田\",\"太郎\",42,\"taro@example.com\"\n", 200))

	for _, alg := range Algorithms() {
		for _, level := range []Level{Fastest, Default, Better, Best} {
			t.Run(string(alg)+"/"+level.String(), func(t *testing.T) {
				var buf bytes.Buffer
				w, err := NewWriter(&buf, Config{Algorithm: alg, Level: level, Concurrency: 2})
				require.NoError(t, err)
				_, err = w.Write(original)
				require.NoError(t, err)
				require.NoError(t, w.Close())

				if alg != None {
					assert.Less(t, buf.Len(), len(original))
				}

				r, err := NewReader(&buf, alg)
				require.NoError(t, err)
				got, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				assert.Equal(t, original, got)
			})
		}
	}
}

func TestCloseDoesNotCloseDestination(t *testing.T) {
	dst := &closeRecorder{}
	w, err := NewWriter(dst, Config{Algorithm: Gzip})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.False(t, dst.closed)
	assert.NotZero(t, dst.Len())
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm(" ZSTD ")
	require.NoError(t, err)
	assert.Equal(t, Zstd, a)

	a, err = ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, None, a)

	_, err = ParseAlgorithm("brotli")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": Default, "fastest": Fastest, "Best": Best, "3": Level(3)}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"0", "10", "fast"} {
		_, err := ParseLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "", None.Extension())
	assert.Equal(t, ".gz", Gzip.Extension())
	assert.Equal(t, ".zst", Zstd.Extension())
	assert.Equal(t, ".lz4", LZ4.Extension())
}

func TestUnsupportedAlgorithm(t *testing.T) {
	_, err := NewWriter(io.Discard, Config{Algorithm: "brotli"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, err = NewReader(strings.NewReader(""), "brotli")
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
