package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	ID      string   `json:"id"`
	Columns []string `json:"columns"`
	Seed    uint64   `json:"seed"`
}

func TestMarshalKeepsHTML(t *testing.T) {
	b, err := Marshal(testRun{ID: "a&b", Columns: []string{"<Name.FullName(name)>"}, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a&b","columns":["<Name.FullName(name)>"],"seed":1}`, string(b))

	var back testRun
	require.NoError(t, Unmarshal(b, &back))
	assert.Equal(t, "a&b", back.ID)
}

func TestMarshalIndent(t *testing.T) {
	b, err := MarshalIndent(map[string]int{"n": 1}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(b))

	// the result must survive the buffer going back to the pool
	again, err := MarshalIndent(map[string]int{"m": 2}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(b))
	assert.Equal(t, "{\n  \"m\": 2\n}", string(again))
}

func TestAppendString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"tab\there", `"tab\there"`},
		{"<a href>&", `"<a href>&"`},
		{"山田 太郎", `"山田 太郎"`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, AppendString(&buf, tt.in))
		assert.Equal(t, tt.want, buf.String())

		var decoded string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, tt.in, decoded)
	}
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("dirty")
	PutBuffer(buf)

	assert.Zero(t, GetBuffer().Len())

	big := bytes.NewBuffer(make([]byte, 0, maxPooledBuffer+1))
	PutBuffer(big) // dropped, not pooled
}

// Benchmark standard library string quoting
func BenchmarkStdString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal("山田 太郎 <yamada@example.com>")
	}
}

// Benchmark pooled string quoting as used by the converters
func BenchmarkAppendString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := GetBuffer()
		_ = AppendString(buf, "山田 太郎 <yamada@example.com>")
		PutBuffer(buf)
	}
}
