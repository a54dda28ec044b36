// Package converter renders generated records as CSV, TSV or JSON.
//
// String values are quoted, other values are written as they are, so
// Primitive.Int stays a number and Fixed.NotString(null) stays null.
// Each converter has three forms: a single record, a data set, and a full
// form that adds a header (CSV and TSV) or a timestamp key (JSON).
package converter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/json"
	"github.com/ajitpratap0/fakes/pkg/option"
)

// FileType is an output format.
type FileType string

const (
	CSV  FileType = "csv"
	TSV  FileType = "tsv"
	JSON FileType = "json"
)

// FileTypes returns the supported output formats.
func FileTypes() []FileType {
	return []FileType{CSV, TSV, JSON}
}

// ParseFileType resolves a case-insensitive format name.
func ParseFileType(s string) (FileType, error) {
	switch ft := FileType(strings.ToLower(strings.TrimSpace(s))); ft {
	case CSV, TSV, JSON:
		return ft, nil
	default:
		return "", errors.Newf(errors.ErrorTypeValidation, "unknown converter %q", s).
			WithDetail("supported", FileTypes())
	}
}

// Form selects which rendering of the records is written.
type Form int

const (
	FormRecord Form = iota
	FormDataSet
	FormFull
)

func (f Form) String() string {
	switch f {
	case FormRecord:
		return "record"
	case FormDataSet:
		return "data_set"
	case FormFull:
		return "full"
	default:
		return "unknown"
	}
}

// SelectForm returns the full form when a header is asked for, the record
// form for a single record and the data set form otherwise.
func SelectForm(header bool, size int) Form {
	switch {
	case header:
		return FormFull
	case size == 1:
		return FormRecord
	default:
		return FormDataSet
	}
}

// Converter writes records whose values line up with fields.
type Converter interface {
	FileType() FileType
	Record(w io.Writer, fields []option.Field, record []string) error
	DataSet(w io.Writer, fields []option.Field, records [][]string) error
	FullForm(w io.Writer, fields []option.Field, records [][]string) error
}

// New returns the converter of ft. now stamps the JSON full form; nil
// means time.Now.
func New(ft FileType, now func() time.Time) (Converter, error) {
	switch ft {
	case CSV:
		return &delimited{fileType: CSV, sep: ","}, nil
	case TSV:
		return &delimited{fileType: TSV, sep: "\t"}, nil
	case JSON:
		if now == nil {
			now = time.Now
		}
		return &jsonConverter{indent: "  ", now: now}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "unknown converter %q", ft)
	}
}

// Render writes records in form. The record form writes only the first
// record.
func Render(w io.Writer, c Converter, form Form, fields []option.Field, records [][]string) error {
	switch form {
	case FormRecord:
		if len(records) == 0 {
			return nil
		}
		return c.Record(w, fields, records[0])
	case FormDataSet:
		return c.DataSet(w, fields, records)
	case FormFull:
		return c.FullForm(w, fields, records)
	default:
		return errors.Newf(errors.ErrorTypeInternal, "unknown form %d", form)
	}
}

func validate(fields []option.Field, records ...[]string) error {
	for i, r := range records {
		if len(r) != len(fields) {
			return errors.Newf(errors.ErrorTypeInternal,
				"record %d has %d values for %d fields", i, len(r), len(fields))
		}
	}
	return nil
}

func flush(w io.Writer, buf *bytes.Buffer) error {
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeOutput, "failed to write converted records")
	}
	return nil
}

// delimited renders CSV and TSV.
type delimited struct {
	fileType FileType
	sep      string
}

func (d *delimited) FileType() FileType { return d.fileType }

func (d *delimited) Record(w io.Writer, fields []option.Field, record []string) error {
	if err := validate(fields, record); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)
	d.writeRecord(buf, fields, record)
	return flush(w, buf)
}

func (d *delimited) DataSet(w io.Writer, fields []option.Field, records [][]string) error {
	if err := validate(fields, records...); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)
	d.writeRecords(buf, fields, records)
	return flush(w, buf)
}

func (d *delimited) FullForm(w io.Writer, fields []option.Field, records [][]string) error {
	if err := validate(fields, records...); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)

	for i, f := range fields {
		if i > 0 {
			buf.WriteString(d.sep)
		}
		writeQuoted(buf, f.Name)
	}
	if len(records) > 0 {
		buf.WriteByte('\n')
	}
	d.writeRecords(buf, fields, records)
	return flush(w, buf)
}

func (d *delimited) writeRecords(buf *bytes.Buffer, fields []option.Field, records [][]string) {
	for i, r := range records {
		if i > 0 {
			buf.WriteByte('\n')
		}
		d.writeRecord(buf, fields, r)
	}
}

func (d *delimited) writeRecord(buf *bytes.Buffer, fields []option.Field, record []string) {
	for i, v := range record {
		if i > 0 {
			buf.WriteString(d.sep)
		}
		if fields[i].Quoted {
			writeQuoted(buf, v)
		} else {
			buf.WriteString(v)
		}
	}
}

// writeQuoted writes v in double quotes, doubling inner quotes.
func writeQuoted(buf *bytes.Buffer, v string) {
	buf.WriteByte('"')
	buf.WriteString(strings.ReplaceAll(v, `"`, `""`))
	buf.WriteByte('"')
}

// jsonConverter renders records as objects with one member per line.
type jsonConverter struct {
	indent string
	now    func() time.Time
}

func (j *jsonConverter) FileType() FileType { return JSON }

func (j *jsonConverter) Record(w io.Writer, fields []option.Field, record []string) error {
	if err := validate(fields, record); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)
	if err := j.writeRecord(buf, 0, fields, record); err != nil {
		return err
	}
	return flush(w, buf)
}

func (j *jsonConverter) DataSet(w io.Writer, fields []option.Field, records [][]string) error {
	if err := validate(fields, records...); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)
	if err := j.writeArray(buf, 0, fields, records); err != nil {
		return err
	}
	return flush(w, buf)
}

// FullForm writes {"<RFC3339 time>": [records...]}.
func (j *jsonConverter) FullForm(w io.Writer, fields []option.Field, records [][]string) error {
	if err := validate(fields, records...); err != nil {
		return err
	}
	buf := json.GetBuffer()
	defer json.PutBuffer(buf)

	buf.WriteString("{\n")
	buf.WriteString(j.indent)
	if err := writeJSONString(buf, j.now().Format(time.RFC3339)); err != nil {
		return err
	}
	buf.WriteString(": ")
	if err := j.writeArray(buf, 1, fields, records); err != nil {
		return err
	}
	buf.WriteString("\n}")
	return flush(w, buf)
}

// writeArray writes the opening bracket at the cursor and the closing one
// at depth.
func (j *jsonConverter) writeArray(buf *bytes.Buffer, depth int, fields []option.Field, records [][]string) error {
	if len(records) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i, r := range records {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(j.indent, depth+1))
		if err := j.writeRecord(buf, depth+1, fields, r); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(j.indent, depth))
	buf.WriteByte(']')
	return nil
}

func (j *jsonConverter) writeRecord(buf *bytes.Buffer, depth int, fields []option.Field, record []string) error {
	if len(record) == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := strings.Repeat(j.indent, depth+1)
	buf.WriteString("{\n")
	for i, v := range record {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(inner)
		if err := writeJSONString(buf, fields[i].Name); err != nil {
			return err
		}
		buf.WriteString(": ")
		if fields[i].Quoted {
			if err := writeJSONString(buf, v); err != nil {
				return err
			}
		} else {
			buf.WriteString(v)
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(j.indent, depth))
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	if err := json.AppendString(buf, s); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, fmt.Sprintf("failed to encode %q", s))
	}
	return nil
}
