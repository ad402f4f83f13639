package streamgen

import (
	"bufio"
	"fmt"
	"io"
)

// CSVHeader is the single header line preceding all records.
//
// Column count varies by row type (4 columns for deposit/withdrawal, 3 for
// dispute/resolve/chargeback); consumers must dispatch on the first field.
const CSVHeader = "type,client,tx,amount"

// CSVLine renders the record as one CSV line without a trailing newline,
// switching on the record's tag.
func (r Record) CSVLine() string {
	if r.HasAmount() {
		return fmt.Sprintf("%s,%d,%d,%s", r.Type, r.Client, r.Tx, r.Amount)
	}

	return fmt.Sprintf("%s,%d,%d", r.Type, r.Client, r.Tx)
}

// CSVWriter streams records as CSV lines to an underlying writer.
// It is buffered; callers must Flush when done.
type CSVWriter struct {
	buf *bufio.Writer
}

// NewCSVWriter creates a CSVWriter on top of w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{buf: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (c *CSVWriter) WriteHeader() error {
	_, err := c.buf.WriteString(CSVHeader + "\n")
	return err
}

// WriteRecord writes one record line.
func (c *CSVWriter) WriteRecord(r Record) error {
	_, err := c.buf.WriteString(r.CSVLine() + "\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (c *CSVWriter) Flush() error {
	return c.buf.Flush()
}

// WriteCSV writes the header followed by all records to w.
func WriteCSV(w io.Writer, records Records) error {
	csvWriter := NewCSVWriter(w)

	if err := csvWriter.WriteHeader(); err != nil {
		return err
	}

	for _, record := range records {
		if err := csvWriter.WriteRecord(record); err != nil {
			return err
		}
	}

	return csvWriter.Flush()
}
