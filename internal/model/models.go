package model

import (
	"errors"
	"time"
)

const (
	ChargeStatusPending   = "PENDING"
	ChargeStatusPaid      = "PAID"
	ChargeStatusCancelled = "CANCELLED"
)

type MerchantSettings struct {
	PixKey       string    `json:"pix_key"`
	MerchantName string    `json:"merchant_name"`
	MerchantCity string    `json:"merchant_city"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PixCharge is a payload issued at checkout together with the inputs it
// was built from.
type PixCharge struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Amount        string    `json:"amount"`
	PixKey        string    `json:"pix_key"`
	MerchantName  string    `json:"merchant_name"`
	MerchantCity  string    `json:"merchant_city"`
	Payload       string    `json:"payload"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChargeFilter struct {
	Status   string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

var ErrNotFound = errors.New("resource not found")
