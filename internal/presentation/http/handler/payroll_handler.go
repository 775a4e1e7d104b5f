package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
)

// PayrollHandler handles employee and recurring-bill HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

type employeeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Phone    *string         `json:"phone"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
}

// ListEmployees handles listing all employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	employees := h.payrollService.ListEmployees(c.Request.Context())
	response.OK(c, "Employees retrieved successfully", employees)
}

// CreateEmployee handles registering an employee
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), &service.EmployeeInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// GetEmployee handles getting a single employee
func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.payrollService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// UpdateEmployee handles editing an employee
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.payrollService.UpdateEmployee(c.Request.Context(), id, &service.EmployeeInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// DeleteEmployee handles removing an employee
func (h *PayrollHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.payrollService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}

// PaySalary handles paying an employee's monthly salary
func (h *PayrollHandler) PaySalary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		AccountID uuid.UUID `json:"account_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tx, err := h.payrollService.PaySalary(c.Request.Context(), id, req.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary paid successfully", tx)
}

type billRequest struct {
	Name      string          `json:"name" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	DueDay    int             `json:"due_day"`
	AccountID uuid.UUID       `json:"account_id" binding:"required"`
	Active    bool            `json:"active"`
}

// ListBills handles listing all recurring bills
func (h *PayrollHandler) ListBills(c *gin.Context) {
	bills := h.payrollService.ListBills(c.Request.Context())
	response.OK(c, "Recurring bills retrieved successfully", bills)
}

// CreateBill handles registering a recurring bill
func (h *PayrollHandler) CreateBill(c *gin.Context) {
	var req billRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.payrollService.CreateBill(c.Request.Context(), &service.BillInput{
		Name:      req.Name,
		Amount:    req.Amount,
		DueDay:    req.DueDay,
		AccountID: req.AccountID,
		Active:    req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Recurring bill created successfully", bill)
}

// GetBill handles getting a single recurring bill
func (h *PayrollHandler) GetBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.payrollService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recurring bill retrieved successfully", bill)
}

// UpdateBill handles editing a recurring bill
func (h *PayrollHandler) UpdateBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req billRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.payrollService.UpdateBill(c.Request.Context(), id, &service.BillInput{
		Name:      req.Name,
		Amount:    req.Amount,
		DueDay:    req.DueDay,
		AccountID: req.AccountID,
		Active:    req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recurring bill updated successfully", bill)
}

// DeleteBill handles removing a recurring bill
func (h *PayrollHandler) DeleteBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.payrollService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recurring bill deleted successfully", nil)
}

// ProcessBill handles paying one recurring bill immediately
func (h *PayrollHandler) ProcessBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	tx, err := h.payrollService.ProcessBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recurring bill processed successfully", tx)
}
