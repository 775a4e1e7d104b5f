package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
)

// ContractHandler handles contracting-job HTTP requests
type ContractHandler struct {
	contractService *service.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// List handles listing all contracts
func (h *ContractHandler) List(c *gin.Context) {
	contracts := h.contractService.ListContracts(c.Request.Context())
	response.OK(c, "Contracts retrieved successfully", contracts)
}

// Create handles opening a new contract
func (h *ContractHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID       uuid.UUID       `json:"customer_id" binding:"required"`
		Description      string          `json:"description"`
		AccessoriesTotal decimal.Decimal `json:"accessories_total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), &service.CreateContractInput{
		CustomerID:       req.CustomerID,
		Description:      req.Description,
		AccessoriesTotal: req.AccessoriesTotal,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contract created successfully", contract)
}

// Get handles getting a single contract with its payments
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract retrieved successfully", contract)
}

// RecordPayment handles collecting a milestone installment
func (h *ContractHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	var req struct {
		Installment enum.Installment `json:"installment" binding:"required"`
		Amount      decimal.Decimal  `json:"amount" binding:"required"`
		AccountID   uuid.UUID        `json:"account_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		ContractID:  id,
		Installment: req.Installment,
		Amount:      req.Amount,
		AccountID:   req.AccountID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", contract)
}

// CancelPayment handles reversing a collected installment
func (h *ContractHandler) CancelPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	var req struct {
		Installment enum.Installment `json:"installment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.CancelPayment(c.Request.Context(), id, req.Installment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment cancelled successfully", contract)
}

// MarkDelivered handles marking the contract as handed over
func (h *ContractHandler) MarkDelivered(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract marked as delivered", contract)
}

// Delete handles deleting a contract
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract deleted successfully", nil)
}
