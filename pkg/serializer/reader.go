package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath picks a format from the file extension: .json, .yaml/.yml,
// .table/.txt. Anything else is treated as JSON.
func FormatFromPath(filePath string) Format {
	lower := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".table"), strings.HasSuffix(lower, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// ErrEmptyInput is returned when the source contains no document.
var ErrEmptyInput = errors.New("input is empty")

// ErrTrailingData is returned when the source holds more than one document.
var ErrTrailingData = errors.New("unexpected data after document")

// Reader decodes JSON or YAML documents. Table output cannot be read back.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader wraps input. If input is an io.Closer, Close closes it.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens filePath for reading in format.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{format: format, input: file, closer: file}, nil
}

// NewFileReaderAuto is NewFileReader with the format taken from the extension.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

// Deserialize decodes the single document held by the input into v. Any
// data after that document other than whitespace fails with ErrTrailingData.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		dec := json.NewDecoder(r.input)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrEmptyInput
			}
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return expectEOF(dec.Decode(new(json.RawMessage)))
	case FormatYAML:
		dec := yaml.NewDecoder(r.input)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrEmptyInput
			}
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return expectEOF(dec.Decode(new(yaml.Node)))
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// expectEOF checks the result of decoding past the first document.
func expectEOF(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrTrailingData, err)
	default:
		return ErrTrailingData
	}
}

// Close releases the input if it is closeable. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads path into a new T, detecting the format from the extension.
func FromFile[T any](path string) (*T, error) {
	format := FormatFromPath(path)
	slog.Debug("determined file format", "path", path, "format", string(format))

	rd, err := NewFileReader(format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if cerr := rd.Close(); cerr != nil {
			slog.Warn("failed to close reader", "error", cerr)
		}
	}()

	var out T
	if err := rd.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", path, err)
	}
	return &out, nil
}
