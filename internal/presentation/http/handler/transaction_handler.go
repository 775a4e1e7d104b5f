package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/pagination"
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles listing transactions, newest first, with optional filters
func (h *TransactionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	input := &service.ListTransactionsInput{
		Type:     enum.TransactionType(c.Query("type")),
		Category: c.Query("category"),
		Params: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if s := c.Query("account_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid account ID")
			return
		}
		input.AccountID = &id
	}
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &id
	}

	result := h.transactionService.ListTransactions(c.Request.Context(), input)
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

type transactionRequest struct {
	Type       enum.TransactionType `json:"type" binding:"required"`
	Amount     decimal.Decimal      `json:"amount" binding:"required"`
	Category   string               `json:"category"`
	AccountID  *uuid.UUID           `json:"account_id"`
	CustomerID *uuid.UUID           `json:"customer_id"`
	Notes      string               `json:"notes"`
	Date       *time.Time           `json:"date"`
}

// Create handles recording a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.RecordTransactionInput{
		Type:       req.Type,
		Amount:     req.Amount,
		Category:   req.Category,
		AccountID:  req.AccountID,
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	tx, err := h.transactionService.RecordTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", tx)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// Update handles replacing a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTransactionInput{
		ID:         id,
		Type:       req.Type,
		Amount:     req.Amount,
		Category:   req.Category,
		AccountID:  req.AccountID,
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction updated successfully", tx)
}

// Delete handles deleting a transaction, reversing its balance effect
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction deleted successfully", nil)
}
