package streamgen

import (
	"bufio"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// recordPayload is the wire shape of a record in JSON-lines output.
// Amount is a string to preserve the fixed-point rendering, and absent for
// dispute-lifecycle records.
type recordPayload struct {
	Type   string `json:"type"`
	Client uint64 `json:"client"`
	Tx     uint64 `json:"tx"`
	Amount string `json:"amount,omitempty"`
}

// PayloadToJSON marshals the record for JSON-lines output.
func (r Record) PayloadToJSON() ([]byte, error) {
	payload := recordPayload{
		Type:   string(r.Type),
		Client: r.Client,
		Tx:     r.Tx,
	}

	if r.HasAmount() {
		payload.Amount = r.Amount.String()
	}

	return jsoniter.ConfigFastest.Marshal(payload)
}

// JSONLWriter streams records as JSON lines to an underlying writer.
// It is buffered; callers must Flush when done.
type JSONLWriter struct {
	buf *bufio.Writer
}

// NewJSONLWriter creates a JSONLWriter on top of w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{buf: bufio.NewWriter(w)}
}

// WriteRecord writes one record as a JSON object on its own line.
func (j *JSONLWriter) WriteRecord(r Record) error {
	payloadJSON, err := r.PayloadToJSON()
	if err != nil {
		return err
	}

	if _, err = j.buf.Write(payloadJSON); err != nil {
		return err
	}

	return j.buf.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (j *JSONLWriter) Flush() error {
	return j.buf.Flush()
}

// WriteJSONL writes all records to w, one JSON object per line. There is no
// header line in JSON-lines output.
func WriteJSONL(w io.Writer, records Records) error {
	jsonlWriter := NewJSONLWriter(w)

	for _, record := range records {
		if err := jsonlWriter.WriteRecord(record); err != nil {
			return err
		}
	}

	return jsonlWriter.Flush()
}
