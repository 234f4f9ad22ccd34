package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/service"
)

type PixHandler struct {
	svc *service.PayloadService
}

func NewPixHandler(svc *service.PayloadService) *PixHandler {
	return &PixHandler{svc: svc}
}

func (h *PixHandler) Encode(c *gin.Context) {
	var req dto.EncodePixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	payload, err := h.svc.Encode(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPixPayloadResponse(payload))
}

func (h *PixHandler) EncodeBatch(c *gin.Context) {
	var req dto.BatchEncodePixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	payloads, validationErrors, err := h.svc.EncodeBatch(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error:  "batch validation failed",
			Errors: validationErrors,
		})
		return
	}

	results := make([]dto.PixPayloadResponse, len(payloads))
	for i, p := range payloads {
		results[i] = dto.NewPixPayloadResponse(p)
	}

	c.JSON(http.StatusOK, dto.BatchPixPayloadResponse{
		Count:    len(results),
		Payloads: results,
	})
}

func (h *PixHandler) Decode(c *gin.Context) {
	var req dto.DecodePixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	p, err := h.svc.Decode(req.Payload)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DecodePixResponse{
		PixKey:        p.PixKey,
		MerchantName:  p.MerchantName,
		MerchantCity:  p.MerchantCity,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
	})
}
