package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/service"
)

type ChargeHandler struct {
	svc *service.ChargeService
}

func NewChargeHandler(svc *service.ChargeService) *ChargeHandler {
	return &ChargeHandler{svc: svc}
}

func (h *ChargeHandler) Create(c *gin.Context) {
	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	charge, err := h.svc.Issue(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, charge)
}

func (h *ChargeHandler) Get(c *gin.Context) {
	id, ok := chargeID(c)
	if !ok {
		return
	}

	charge, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, charge)
}

func (h *ChargeHandler) List(c *gin.Context) {
	q, err := dto.ParseChargeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	charges, totalItems, err := h.svc.List(c.Request.Context(), q.Filter())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       charges,
		"pagination": dto.NewPagination(q.Page, q.PageSize, totalItems),
	})
}

func (h *ChargeHandler) UpdateStatus(c *gin.Context) {
	id, ok := chargeID(c)
	if !ok {
		return
	}

	var req dto.UpdateChargeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	charge, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, charge)
}

func chargeID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid charge id"})
		return "", false
	}
	return id.String(), true
}
