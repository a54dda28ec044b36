// Package json wraps goccy/go-json with pooled buffers. HTML characters
// are never escaped, so generated values such as "<b>" or "a&b" come out
// as written.
package json

import (
	"bytes"
	"sync"

	gojson "github.com/goccy/go-json"
)

const maxPooledBuffer = 1024 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// GetBuffer gets a pooled bytes.Buffer
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer { // Don't pool very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Marshal encodes v without HTML escaping.
func Marshal(v interface{}) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

// MarshalIndent encodes v with indentation and without HTML escaping.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	enc := gojson.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode adds a newline; return a copy since buf goes back to the pool
	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return append([]byte(nil), out...), nil
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// AppendString writes s to buf as a JSON string literal.
func AppendString(buf *bytes.Buffer, s string) error {
	b, err := gojson.MarshalWithOption(s, gojson.DisableHTMLEscape())
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
