package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an on-disk encoding of a list of records.
type Format int

const (
	// FormatJSON is the flat JSON array used by FileStore.
	FormatJSON Format = iota
	// FormatSheet is the s-expression sheet written by WriteSheet.
	FormatSheet
)

func (f Format) String() string {
	if f == FormatSheet {
		return "sheet"
	}
	return "json"
}

// FormatFor picks a format from a file extension. Anything that is not
// .json is treated as a sheet.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatSheet
}

// Decode reads records in either format, sniffing the first non-space byte.
func Decode(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	for {
		b, err := br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("store: %w", err)
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
			continue
		case '[':
			var records []Record
			if err := json.NewDecoder(br).Decode(&records); err != nil {
				return nil, fmt.Errorf("store: decode json: %w", err)
			}
			return records, nil
		}
		return ReadSheet(br)
	}
}

// Encode writes records in the given format.
func Encode(w io.Writer, records []Record, f Format) error {
	if f == FormatSheet {
		return WriteSheet(w, records)
	}
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ReadFile decodes the records stored at path in either format.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes records to path in the format its extension implies.
func WriteFile(path string, records []Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records, FormatFor(path)); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}
