package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/enum"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/apperror"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/pagination"
)

func seedBook(t *testing.T) (*ledger.Book, uuid.UUID) {
	t.Helper()
	b := ledger.New()
	a, err := b.CreateAccount("الخزنة الرئيسية", decimal.NewFromInt(10000))
	require.NoError(t, err)
	return b, a.ID
}

func TestListTransactions_Pagination(t *testing.T) {
	b, acctID := seedBook(t)
	svc := NewTransactionService(b)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.RecordTransaction(ctx, &RecordTransactionInput{
			Type:      enum.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(100),
			Category:  "دفعات عقود",
			AccountID: &acctID,
		})
		require.NoError(t, err)
	}

	result := svc.ListTransactions(ctx, &ListTransactionsInput{
		Params: &pagination.PaginationParams{Page: 2, PerPage: 2},
	})

	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestListTransactions_Filter(t *testing.T) {
	b, acctID := seedBook(t)
	svc := NewTransactionService(b)
	ctx := context.Background()

	_, err := svc.RecordTransaction(ctx, &RecordTransactionInput{
		Type: enum.TransactionTypeIncome, Amount: decimal.NewFromInt(500),
		Category: "دفعات عقود", AccountID: &acctID,
	})
	require.NoError(t, err)
	_, err = svc.RecordTransaction(ctx, &RecordTransactionInput{
		Type: enum.TransactionTypeExpense, Amount: decimal.NewFromInt(200),
		Category: "مشتريات خامات", AccountID: &acctID,
	})
	require.NoError(t, err)

	result := svc.ListTransactions(ctx, &ListTransactionsInput{
		Type:   enum.TransactionTypeExpense,
		Params: pagination.DefaultPagination(),
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "مشتريات خامات", result.Items[0].Category)
}

func TestRecordTransaction_ErrorMapping(t *testing.T) {
	b, _ := seedBook(t)
	svc := NewTransactionService(b)
	ghost := uuid.New()

	_, err := svc.RecordTransaction(context.Background(), &RecordTransactionInput{
		Type: enum.TransactionTypeIncome, Amount: decimal.NewFromInt(100), AccountID: &ghost,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestGetTransaction_NotFound(t *testing.T) {
	b, _ := seedBook(t)
	svc := NewTransactionService(b)

	_, err := svc.GetTransaction(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}
