// Package pix encodes and decodes static BR Code payloads, the EMV
// merchant-presented QR format used by the Brazilian PIX instant payment
// system.
package pix

import (
	"regexp"
)

// Tag ids of the merchant-presented payload, in emission order.
const (
	TagPayloadFormat       = "00"
	TagMerchantAccount     = "26"
	TagMerchantCategory    = "52"
	TagTransactionCurrency = "53"
	TagTransactionAmount   = "54"
	TagCountryCode         = "58"
	TagMerchantName        = "59"
	TagMerchantCity        = "60"
	TagAdditionalData      = "62"
	TagCRC                 = "63"

	subTagGUI           = "00"
	subTagKey           = "01"
	subTagTransactionID = "05"
)

const (
	PayloadFormatIndicator = "01"
	PixGUI                 = "br.gov.bcb.pix"
	MerchantCategoryCode   = "0000"
	CurrencyBRL            = "986"
	CountryBR              = "BR"
	NoTransactionID        = "***"

	crcPlaceholder = TagCRC + "04"
)

var (
	amountRx       = regexp.MustCompile(`^\d+\.\d{2}$`)
	ledgerAmountRx = regexp.MustCompile(`^(0|[1-9]\d{0,9})\.\d{2}$`)
)

// Payload holds the business inputs of a static PIX charge. Amount must
// already be a fixed-point decimal with exactly two fraction digits.
type Payload struct {
	PixKey        string `json:"pix_key"`
	MerchantName  string `json:"merchant_name"`
	MerchantCity  string `json:"merchant_city"`
	Amount        string `json:"amount"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Encode builds the BR Code for the given inputs. An omitted or empty
// transactionID is written as "***".
func Encode(pixKey, merchantName, merchantCity, amount string, transactionID ...string) (string, error) {
	p := Payload{
		PixKey:       pixKey,
		MerchantName: merchantName,
		MerchantCity: merchantCity,
		Amount:       amount,
	}
	if len(transactionID) > 0 {
		p.TransactionID = transactionID[0]
	}
	return p.Build()
}

// ValidAmount reports whether amount is a non-negative fixed-point decimal
// with exactly two fraction digits and no separators.
func ValidAmount(amount string) bool {
	return amountRx.MatchString(amount)
}

// ValidLedgerAmount is ValidAmount restricted to the canonical form a
// NUMERIC(12,2) column stores and returns: no leading zeros and at most ten
// integer digits.
func ValidLedgerAmount(amount string) bool {
	return ledgerAmountRx.MatchString(amount)
}

// Validate checks the required inputs. It does not validate the PIX key
// format or the standard's name/city length recommendations.
func (p Payload) Validate() error {
	switch {
	case p.PixKey == "":
		return &InvalidInputError{Field: "pix_key", Reason: "must not be empty"}
	case p.MerchantName == "":
		return &InvalidInputError{Field: "merchant_name", Reason: "must not be empty"}
	case p.MerchantCity == "":
		return &InvalidInputError{Field: "merchant_city", Reason: "must not be empty"}
	case p.Amount == "":
		return &InvalidInputError{Field: "amount", Reason: "must not be empty"}
	case !ValidAmount(p.Amount):
		return &InvalidInputError{Field: "amount", Reason: "must be a non-negative decimal with two fraction digits, e.g. 49.90"}
	}
	return nil
}

func (p Payload) transactionID() string {
	if p.TransactionID == "" {
		return NoTransactionID
	}
	return p.TransactionID
}

// Build returns the complete payload, CRC included. It fails before doing
// any work if the inputs are invalid.
func (p Payload) Build() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	account, err := formatFields(
		Field{ID: subTagGUI, Value: PixGUI},
		Field{ID: subTagKey, Value: p.PixKey},
	)
	if err != nil {
		return "", err
	}

	additional, err := formatFields(Field{ID: subTagTransactionID, Value: p.transactionID()})
	if err != nil {
		return "", err
	}

	body, err := formatFields(
		Field{ID: TagPayloadFormat, Value: PayloadFormatIndicator},
		Field{ID: TagMerchantAccount, Value: account},
		Field{ID: TagMerchantCategory, Value: MerchantCategoryCode},
		Field{ID: TagTransactionCurrency, Value: CurrencyBRL},
		Field{ID: TagTransactionAmount, Value: p.Amount},
		Field{ID: TagCountryCode, Value: CountryBR},
		Field{ID: TagMerchantName, Value: p.MerchantName},
		Field{ID: TagMerchantCity, Value: p.MerchantCity},
		Field{ID: TagAdditionalData, Value: additional},
	)
	if err != nil {
		return "", err
	}

	// The checksum covers its own tag and length but not its value.
	body += crcPlaceholder
	return body + Checksum(body), nil
}
