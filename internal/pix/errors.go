package pix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("pix: invalid input")
	ErrFieldTooLong     = errors.New("pix: field too long")
	ErrMalformedPayload = errors.New("pix: malformed payload")
	ErrChecksumMismatch = errors.New("pix: checksum mismatch")
	ErrNotPix           = errors.New("pix: merchant account is not a PIX account")
)

// InvalidInputError reports a required input that is missing or badly formatted.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("pix: invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FieldTooLongError reports a value whose length cannot be written in a
// two digit length prefix.
type FieldTooLongError struct {
	Tag    string
	Length int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("pix: field %s is %d bytes long, max %d", e.Tag, e.Length, MaxFieldLength)
}

func (e *FieldTooLongError) Is(target error) bool {
	return target == ErrFieldTooLong
}
