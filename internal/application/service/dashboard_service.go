package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
)

// DashboardService aggregates ledger state for the overview screen
type DashboardService struct {
	book *ledger.Book
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(book *ledger.Book) *DashboardService {
	return &DashboardService{book: book}
}

// DashboardSummary is the aggregated state shown on the overview screen
type DashboardSummary struct {
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	Accounts           []entity.Account     `json:"accounts"`
	MonthIncome        decimal.Decimal      `json:"month_income"`
	MonthExpense       decimal.Decimal      `json:"month_expense"`
	OpenContracts      int                  `json:"open_contracts"`
	CustomersInDebt    int                  `json:"customers_in_debt"`
	Receivables        decimal.Decimal      `json:"receivables"`
	RecentTransactions []entity.Transaction `json:"recent_transactions"`
}

const recentTransactionCount = 10

// GetSummary builds the dashboard summary for the given point in time
func (s *DashboardService) GetSummary(ctx context.Context, now time.Time) *DashboardSummary {
	summary := &DashboardSummary{
		TotalBalance: decimal.Zero,
		MonthIncome:  decimal.Zero,
		MonthExpense: decimal.Zero,
		Receivables:  decimal.Zero,
	}

	summary.Accounts = s.book.Accounts()
	for _, a := range summary.Accounts {
		summary.TotalBalance = summary.TotalBalance.Add(a.Balance)
	}

	for _, c := range s.book.Customers() {
		if c.Balance.IsNegative() {
			summary.CustomersInDebt++
			summary.Receivables = summary.Receivables.Sub(c.Balance)
		}
	}

	for _, c := range s.book.Contracts() {
		if c.Stage != enum.ContractStageDelivered {
			summary.OpenContracts++
		}
	}

	txs := s.book.Transactions(ledger.TransactionFilter{})
	for _, t := range txs {
		if t.Date.Year() != now.Year() || t.Date.Month() != now.Month() {
			continue
		}
		if t.Type == enum.TransactionTypeIncome {
			summary.MonthIncome = summary.MonthIncome.Add(t.Amount)
		} else {
			summary.MonthExpense = summary.MonthExpense.Add(t.Amount)
		}
	}

	if len(txs) > recentTransactionCount {
		txs = txs[:recentTransactionCount]
	}
	summary.RecentTransactions = txs

	return summary
}
