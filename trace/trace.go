// Package trace records controller transitions as a stream of CBOR records.
//
// A trace is diagnostic output for one session. It is never replayed into a controller.
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Record is one command or transition observed by the host
// Integer keys keep records compact
type Record struct {
	Session     uuid.UUID `cbor:"1,keyasint"`
	Seq         uint64    `cbor:"2,keyasint"`
	AtMs        int64     `cbor:"3,keyasint"`
	Op          string    `cbor:"4,keyasint"`
	From        string    `cbor:"5,keyasint"`
	To          string    `cbor:"6,keyasint"`
	RemainingMs int64     `cbor:"7,keyasint"`
	Err         string    `cbor:"8,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trace CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trace CBOR decoder mode: %v", err))
	}
}

// Writer appends records for a single session
// It is safe for concurrent use
type Writer struct {
	mu      sync.Mutex
	session uuid.UUID
	seq     uint64
	encoder *cbor.Encoder
	closer  io.Closer
	closed  bool
}

// NewWriter streams records to w under a fresh session id
func NewWriter(w io.Writer) *Writer {
	tw := &Writer{
		session: uuid.New(),
		encoder: encMode.NewEncoder(w),
	}
	if c, ok := w.(io.Closer); ok {
		tw.closer = c
	}
	return tw
}

// Create opens path for appending, creating it with 0644 if needed
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	return NewWriter(f), nil
}

// Session returns the id stamped on every record
func (w *Writer) Session() uuid.UUID {
	return w.session
}

// Write stamps rec with the session id and next sequence number and encodes it
// Writes after Close are silently dropped
func (w *Writer) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.seq++
	rec.Session = w.session
	rec.Seq = w.seq
	return w.encoder.Encode(rec)
}

// Close closes the underlying writer if it is a Closer, safe to call more than once
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Reader decodes records in write order
type Reader struct {
	decoder *cbor.Decoder
}

// NewReader reads records from r
func NewReader(r io.Reader) *Reader {
	return &Reader{decoder: decMode.NewDecoder(r)}
}

// Next returns the next record or io.EOF at the end of the stream
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.decoder.Decode(&rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadAll drains r
func ReadAll(r io.Reader) ([]Record, error) {
	rd := NewReader(r)
	var out []Record
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
