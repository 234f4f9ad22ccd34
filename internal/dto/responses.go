package dto

type PixPayloadResponse struct {
	Payload string `json:"payload"`
	CRC     string `json:"crc"`
	Length  int    `json:"length"`
}

type BatchPixPayloadResponse struct {
	Count    int                  `json:"count"`
	Payloads []PixPayloadResponse `json:"payloads"`
}

type DecodePixResponse struct {
	PixKey        string `json:"pix_key"`
	MerchantName  string `json:"merchant_name"`
	MerchantCity  string `json:"merchant_city"`
	Amount        string `json:"amount"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func NewPixPayloadResponse(payload string) PixPayloadResponse {
	return PixPayloadResponse{
		Payload: payload,
		CRC:     payload[len(payload)-4:],
		Length:  len(payload),
	}
}
