package element

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a stream from an element dump: a JSON array of objects
// with "type", "text", "element_id" and "metadata" keys, as produced
// by layout parsers in the unstructured family. Unknown keys are
// ignored; missing metadata decodes to the zero value so a stream
// with sparse annotations is still usable.
func Decode(r io.Reader) (Stream, error) {
	var s Stream
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode element stream: %w", err)
	}
	return s, nil
}

// DecodeFile decodes an element dump from disk.
func DecodeFile(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open element dump: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
