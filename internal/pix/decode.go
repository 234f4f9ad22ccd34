package pix

import (
	"fmt"
	"strings"
)

const crcFieldLen = len(crcPlaceholder) + 4

// Decode parses a static BR Code produced by Build (or any conforming
// generator), verifies its checksum and returns the encoded inputs. A
// "***" transaction id is returned as empty.
func Decode(payload string) (Payload, error) {
	s := strings.TrimSpace(payload)
	if len(s) < crcFieldLen {
		return Payload{}, fmt.Errorf("%w: too short", ErrMalformedPayload)
	}

	body := s[:len(s)-4]
	if !strings.HasSuffix(body, crcPlaceholder) {
		return Payload{}, fmt.Errorf("%w: missing CRC field", ErrMalformedPayload)
	}
	want := strings.ToUpper(s[len(s)-4:])
	if got := Checksum(body); got != want {
		return Payload{}, fmt.Errorf("%w: payload says %s, computed %s", ErrChecksumMismatch, want, got)
	}

	fields, err := ParseFields(s)
	if err != nil {
		return Payload{}, err
	}

	if f, ok := findField(fields, TagPayloadFormat); !ok || f.Value != PayloadFormatIndicator {
		return Payload{}, fmt.Errorf("%w: unsupported payload format indicator", ErrMalformedPayload)
	}

	var out Payload

	account, ok := findField(fields, TagMerchantAccount)
	if !ok {
		return Payload{}, fmt.Errorf("%w: no merchant account information", ErrNotPix)
	}
	subs, err := ParseFields(account.Value)
	if err != nil {
		return Payload{}, err
	}
	if gui, _ := findField(subs, subTagGUI); !strings.EqualFold(gui.Value, PixGUI) {
		return Payload{}, fmt.Errorf("%w: GUI %q", ErrNotPix, gui.Value)
	}
	key, _ := findField(subs, subTagKey)
	out.PixKey = key.Value

	amount, _ := findField(fields, TagTransactionAmount)
	out.Amount = amount.Value
	name, _ := findField(fields, TagMerchantName)
	out.MerchantName = name.Value
	city, _ := findField(fields, TagMerchantCity)
	out.MerchantCity = city.Value

	if additional, ok := findField(fields, TagAdditionalData); ok {
		subs, err := ParseFields(additional.Value)
		if err != nil {
			return Payload{}, err
		}
		if tx, _ := findField(subs, subTagTransactionID); tx.Value != NoTransactionID {
			out.TransactionID = tx.Value
		}
	}

	return out, nil
}
