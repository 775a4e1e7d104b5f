package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
)

// PurchaseHandler handles raw-material purchase HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// List handles listing all purchases newest first
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases := h.purchaseService.ListPurchases(c.Request.Context())
	response.OK(c, "Purchases retrieved successfully", purchases)
}

// Create handles recording a purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req struct {
		MaterialName string          `json:"material_name" binding:"required"`
		Quantity     decimal.Decimal `json:"quantity" binding:"required"`
		UnitPrice    decimal.Decimal `json:"unit_price"`
		AccountID    *uuid.UUID      `json:"account_id"`
		CustomerID   *uuid.UUID      `json:"customer_id"`
		Date         *time.Time      `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.AddPurchaseInput{
		MaterialName: req.MaterialName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		AccountID:    req.AccountID,
		CustomerID:   req.CustomerID,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	purchase, err := h.purchaseService.AddPurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded successfully", purchase)
}

// Get handles getting a single purchase
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Update handles editing a purchase
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req struct {
		Quantity   decimal.Decimal `json:"quantity" binding:"required"`
		UnitPrice  decimal.Decimal `json:"unit_price"`
		AccountID  *uuid.UUID      `json:"account_id"`
		CustomerID *uuid.UUID      `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), &service.UpdatePurchaseInput{
		ID:         id,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		AccountID:  req.AccountID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase updated successfully", purchase)
}

// Delete handles deleting a purchase, reversing its effects
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase deleted successfully", nil)
}
