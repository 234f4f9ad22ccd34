package pix

import (
	"fmt"
	"strconv"
)

const (
	tagLen         = 2
	lengthLen      = 2
	MaxFieldLength = 99
)

// Field is a single Tag-Length-Value entry of a BR Code.
type Field struct {
	ID    string
	Value string
}

// FormatField emits id + two digit zero padded byte length + value.
func FormatField(id, value string) (string, error) {
	if len(id) != tagLen {
		return "", fmt.Errorf("%w: tag %q must be %d digits", ErrMalformedPayload, id, tagLen)
	}
	if len(value) > MaxFieldLength {
		return "", &FieldTooLongError{Tag: id, Length: len(value)}
	}
	return fmt.Sprintf("%s%02d%s", id, len(value), value), nil
}

// formatFields formats and concatenates fields in order.
func formatFields(fields ...Field) (string, error) {
	var out string
	for _, f := range fields {
		s, err := FormatField(f.ID, f.Value)
		if err != nil {
			return "", err
		}
		out += s
	}
	return out, nil
}

// ParseFields splits a TLV stream into its fields. Composite values are
// returned as-is; call ParseFields again on them to read sub-fields.
func ParseFields(s string) ([]Field, error) {
	var fields []Field
	offset := 0
	for offset < len(s) {
		if offset+tagLen+lengthLen > len(s) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformedPayload, offset)
		}
		id := s[offset : offset+tagLen]
		offset += tagLen

		lengthStr := s[offset : offset+lengthLen]
		length, err := strconv.Atoi(lengthStr)
		if err != nil || !isDigits(lengthStr) {
			return nil, fmt.Errorf("%w: invalid length %q for tag %s", ErrMalformedPayload, lengthStr, id)
		}
		offset += lengthLen

		if offset+length > len(s) {
			return nil, fmt.Errorf("%w: tag %s needs %d bytes, %d left", ErrMalformedPayload, id, length, len(s)-offset)
		}
		fields = append(fields, Field{ID: id, Value: s[offset : offset+length]})
		offset += length
	}
	return fields, nil
}

func findField(fields []Field, id string) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
