package expenserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB, mockTxManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_CreateWithDebts(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	now := time.Now()

	expenseQuery := `
		INSERT INTO expenses (description, total_amount, payer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	debtQuery := `
		INSERT INTO debts (expense_id, debtor_id, amount, paid_amount, is_fully_paid)
		VALUES ($1, $2, $3, 0, FALSE)
		RETURNING id
	`

	tests := []struct {
		name      string
		expense   *domain.Expense
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Expense with two debts",
			expense: &domain.Expense{
				Description: "Dinner",
				TotalAmount: dec("30"),
				PayerID:     1,
				Debts: []domain.Debt{
					{DebtorID: 2, Amount: dec("10"), PaidAmount: dec("0")},
					{DebtorID: 3, Amount: dec("10"), PaidAmount: dec("0")},
				},
			},
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta(expenseQuery)).
					WithArgs("Dinner", dec("30"), 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))
				mock.ExpectQuery(regexp.QuoteMeta(debtQuery)).
					WithArgs(4, 2, dec("10")).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
				mock.ExpectQuery(regexp.QuoteMeta(debtQuery)).
					WithArgs(4, 3, dec("10")).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
		},
		{
			name: "Debt insert fails",
			expense: &domain.Expense{
				Description: "Dinner",
				TotalAmount: dec("30"),
				PayerID:     1,
				Debts:       []domain.Debt{{DebtorID: 2, Amount: dec("10"), PaidAmount: dec("0")}},
			},
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta(expenseQuery)).
					WithArgs("Dinner", dec("30"), 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))
				mock.ExpectQuery(regexp.QuoteMeta(debtQuery)).
					WithArgs(4, 2, dec("10")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithDebts(context.Background(), tt.expense)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, result.ID)
				for _, d := range result.Debts {
					assert.Equal(t, 4, d.ExpenseID)
					assert.NotZero(t, d.ID)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindDebtsForUser(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid, e.payer_id
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        WHERE e.payer_id = $1 OR d.debtor_id = $1
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.DebtWithPayer
	}{
		{
			name: "Debts in both directions",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "expense_id", "debtor_id", "amount", "paid_amount", "is_fully_paid", "payer_id"}).
					AddRow(10, 4, 2, dec("10"), dec("0"), false, 1).
					AddRow(12, 5, 1, dec("7.50"), dec("7.50"), true, 2)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.DebtWithPayer{
				{Debt: domain.Debt{ID: 10, ExpenseID: 4, DebtorID: 2, Amount: dec("10"), PaidAmount: dec("0")}, PayerID: 1},
				{Debt: domain.Debt{ID: 12, ExpenseID: 5, DebtorID: 1, Amount: dec("7.50"), PaidAmount: dec("7.50"), IsFullyPaid: true}, PayerID: 2},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindDebtsForUser(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPairDebtsForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid, e.payer_id
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        WHERE (e.payer_id = $1 AND d.debtor_id = $2)
           OR (e.payer_id = $2 AND d.debtor_id = $1)
        ORDER BY d.expense_id ASC, d.id ASC
        FOR UPDATE OF d
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.DebtWithPayer
	}{
		{
			name: "Oldest expense first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "expense_id", "debtor_id", "amount", "paid_amount", "is_fully_paid", "payer_id"}).
					AddRow(10, 4, 2, dec("10"), dec("0"), false, 1).
					AddRow(12, 5, 2, dec("40"), dec("5"), false, 1)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2).
					WillReturnRows(rows)
			},
			result: []domain.DebtWithPayer{
				{Debt: domain.Debt{ID: 10, ExpenseID: 4, DebtorID: 2, Amount: dec("10"), PaidAmount: dec("0")}, PayerID: 1},
				{Debt: domain.Debt{ID: 12, ExpenseID: 5, DebtorID: 2, Amount: dec("40"), PaidAmount: dec("5")}, PayerID: 1},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPairDebtsForUpdate(context.Background(), 1, 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateDebtPaid(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        UPDATE debts
        SET paid_amount = $1, is_fully_paid = $2
        WHERE id = $3
    `

	tests := []struct {
		name      string
		debt      *domain.Debt
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Debt updated",
			debt: &domain.Debt{ID: 10, PaidAmount: dec("10"), IsFullyPaid: true},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(dec("10"), true, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			debt: &domain.Debt{ID: 10, PaidAmount: dec("10"), IsFullyPaid: true},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(dec("10"), true, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateDebtPaid(context.Background(), tt.debt)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindPaidByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	query := `
        SELECT id, description, total_amount, payer_id, created_at
        FROM expenses
        WHERE payer_id = $1
        ORDER BY id DESC
    `
	debtQuery := `
        SELECT id, expense_id, debtor_id, amount, paid_amount, is_fully_paid
        FROM debts
        WHERE expense_id = ANY($1)
        ORDER BY id ASC
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		check     func(t *testing.T, result []domain.Expense)
	}{
		{
			name: "Expenses with debts attached",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "description", "total_amount", "payer_id", "created_at"}).
					AddRow(5, "Trip", dec("120"), 1, now).
					AddRow(4, "Dinner", dec("30"), 1, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
				debtRows := pgxmock.NewRows([]string{"id", "expense_id", "debtor_id", "amount", "paid_amount", "is_fully_paid"}).
					AddRow(10, 4, 2, dec("10"), dec("0"), false).
					AddRow(12, 5, 2, dec("40"), dec("0"), false)
				mock.ExpectQuery(regexp.QuoteMeta(debtQuery)).
					WithArgs([]int{5, 4}).
					WillReturnRows(debtRows)
			},
			check: func(t *testing.T, result []domain.Expense) {
				assert.Len(t, result, 2)
				assert.Equal(t, 5, result[0].ID)
				assert.Len(t, result[0].Debts, 1)
				assert.Equal(t, 4, result[1].ID)
				assert.Len(t, result[1].Debts, 1)
			},
		},
		{
			name: "No expenses skips the debt query",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "description", "total_amount", "payer_id", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, result []domain.Expense) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPaidByUser(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				tt.check(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindOwedByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid,
               e.description, e.payer_id, u.name AS payer_name, e.created_at
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        JOIN users u ON u.id = e.payer_id
        WHERE d.debtor_id = $1
        ORDER BY e.id DESC
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.OwedDebt
	}{
		{
			name: "Owed debts with payer details",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "expense_id", "debtor_id", "amount", "paid_amount", "is_fully_paid", "description", "payer_id", "payer_name", "created_at"}).
					AddRow(10, 4, 2, dec("10"), dec("0"), false, "Dinner", 1, "Alice Example", now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: []domain.OwedDebt{
				{
					Debt:        domain.Debt{ID: 10, ExpenseID: 4, DebtorID: 2, Amount: dec("10"), PaidAmount: dec("0")},
					Description: "Dinner",
					PayerID:     1,
					PayerName:   "Alice Example",
					CreatedAt:   now,
				},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOwedByUser(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
