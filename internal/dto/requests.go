package dto

type EncodePixRequest struct {
	PixKey        string `json:"pix_key" binding:"required,max=77"`
	MerchantName  string `json:"merchant_name" binding:"required"`
	MerchantCity  string `json:"merchant_city" binding:"required"`
	Amount        string `json:"amount" binding:"required,brl_amount"`
	TransactionID string `json:"transaction_id" binding:"omitempty,max=25"`
}

type BatchEncodePixRequest struct {
	Payloads []EncodePixRequest `json:"payloads" binding:"required,min=1,max=500,dive"`
}

type DecodePixRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type UpdatePixSettingsRequest struct {
	PixKey       string `json:"pix_key" binding:"required,max=77"`
	MerchantName string `json:"merchant_name" binding:"required,max=99"`
	MerchantCity string `json:"merchant_city" binding:"required,max=99"`
}

type CreateChargeRequest struct {
	Amount        string `json:"amount" binding:"required,brl_ledger_amount"`
	TransactionID string `json:"transaction_id" binding:"omitempty,alphanum,max=25"`
}

type UpdateChargeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PAID CANCELLED"`
}
