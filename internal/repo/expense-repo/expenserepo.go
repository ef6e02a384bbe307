package expenserepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateWithDebts persists an expense and all of its debts as one unit.
// A partially written expense is never observable.
func (r *Repository) CreateWithDebts(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
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
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, expenseQuery, expense.Description, expense.TotalAmount, expense.PayerID).
			Scan(&expense.ID, &expense.CreatedAt)
		if err != nil {
			zap.L().Error("can't save expense", zap.Error(err))
			return err
		}
		for i := range expense.Debts {
			debt := &expense.Debts[i]
			debt.ExpenseID = expense.ID
			if err := r.db.QueryRow(ctx, debtQuery, expense.ID, debt.DebtorID, debt.Amount).Scan(&debt.ID); err != nil {
				zap.L().Error("can't save debt", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// FindDebtsForUser returns every debt whose expense payer or debtor is the
// user, joined with the payer id. Input for balance aggregation.
func (r *Repository) FindDebtsForUser(ctx context.Context, userID int) ([]domain.DebtWithPayer, error) {
	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid, e.payer_id
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        WHERE e.payer_id = $1 OR d.debtor_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get debts for user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.DebtWithPayer
	for rows.Next() {
		var debt domain.DebtWithPayer
		err := rows.Scan(&debt.ID, &debt.ExpenseID, &debt.DebtorID, &debt.Amount, &debt.PaidAmount, &debt.IsFullyPaid, &debt.PayerID)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

// FindPairDebtsForUpdate locks and returns all debts between two users, both
// directions, oldest expense first. Must run inside a transaction; the locks
// serialize concurrent settlements for the pair.
func (r *Repository) FindPairDebtsForUpdate(ctx context.Context, userID, friendID int) ([]domain.DebtWithPayer, error) {
	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid, e.payer_id
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        WHERE (e.payer_id = $1 AND d.debtor_id = $2)
           OR (e.payer_id = $2 AND d.debtor_id = $1)
        ORDER BY d.expense_id ASC, d.id ASC
        FOR UPDATE OF d
    `
	rows, err := r.db.Query(ctx, query, userID, friendID)
	if err != nil {
		zap.L().Error("can't lock pair debts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.DebtWithPayer
	for rows.Next() {
		var debt domain.DebtWithPayer
		err := rows.Scan(&debt.ID, &debt.ExpenseID, &debt.DebtorID, &debt.Amount, &debt.PaidAmount, &debt.IsFullyPaid, &debt.PayerID)
		if err != nil {
			zap.L().Error("can't scan pair debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func (r *Repository) UpdateDebtPaid(ctx context.Context, debt *domain.Debt) error {
	query := `
        UPDATE debts
        SET paid_amount = $1, is_fully_paid = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, debt.PaidAmount, debt.IsFullyPaid, debt.ID)
	if err != nil {
		zap.L().Error("can't update debt", zap.Error(err))
		return err
	}
	return nil
}

// FindPaidByUser returns the expenses the user fronted, newest first, with
// their debts attached.
func (r *Repository) FindPaidByUser(ctx context.Context, userID int) ([]domain.Expense, error) {
	query := `
        SELECT id, description, total_amount, payer_id, created_at
        FROM expenses
        WHERE payer_id = $1
        ORDER BY id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get paid expenses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	var ids []int
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(&expense.ID, &expense.Description, &expense.TotalAmount, &expense.PayerID, &expense.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan expense row", zap.Error(err))
			return nil, err
		}
		expenses = append(expenses, expense)
		ids = append(ids, expense.ID)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	debtQuery := `
        SELECT id, expense_id, debtor_id, amount, paid_amount, is_fully_paid
        FROM debts
        WHERE expense_id = ANY($1)
        ORDER BY id ASC
    `
	debtRows, err := r.db.Query(ctx, debtQuery, ids)
	if err != nil {
		zap.L().Error("can't get debts for expenses", zap.Error(err))
		return nil, err
	}
	defer debtRows.Close()

	byExpense := make(map[int]*domain.Expense, len(expenses))
	for i := range expenses {
		byExpense[expenses[i].ID] = &expenses[i]
	}
	for debtRows.Next() {
		var debt domain.Debt
		err := debtRows.Scan(&debt.ID, &debt.ExpenseID, &debt.DebtorID, &debt.Amount, &debt.PaidAmount, &debt.IsFullyPaid)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, err
		}
		if expense, ok := byExpense[debt.ExpenseID]; ok {
			expense.Debts = append(expense.Debts, debt)
		}
	}
	return expenses, nil
}

// FindOwedByUser returns the debts the user owes, newest expense first.
func (r *Repository) FindOwedByUser(ctx context.Context, userID int) ([]domain.OwedDebt, error) {
	query := `
        SELECT d.id, d.expense_id, d.debtor_id, d.amount, d.paid_amount, d.is_fully_paid,
               e.description, e.payer_id, u.name AS payer_name, e.created_at
        FROM debts d
        JOIN expenses e ON e.id = d.expense_id
        JOIN users u ON u.id = e.payer_id
        WHERE d.debtor_id = $1
        ORDER BY e.id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get owed debts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.OwedDebt
	for rows.Next() {
		var debt domain.OwedDebt
		err := rows.Scan(&debt.ID, &debt.ExpenseID, &debt.DebtorID, &debt.Amount, &debt.PaidAmount, &debt.IsFullyPaid,
			&debt.Description, &debt.PayerID, &debt.PayerName, &debt.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan owed debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}
