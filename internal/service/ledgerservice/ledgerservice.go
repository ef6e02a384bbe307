// Package ledgerservice owns the who-owes-whom core: splitting a fronted
// expense into per-person debts, aggregating debts into signed net balances
// and allocating incoming payments across outstanding debts oldest-first.
package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
)

type LedgerRepo interface {
	CreateWithDebts(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	FindDebtsForUser(ctx context.Context, userID int) ([]domain.DebtWithPayer, error)
	FindPairDebtsForUpdate(ctx context.Context, userID, friendID int) ([]domain.DebtWithPayer, error)
	UpdateDebtPaid(ctx context.Context, debt *domain.Debt) error
	FindPaidByUser(ctx context.Context, userID int) ([]domain.Expense, error)
	FindOwedByUser(ctx context.Context, userID int) ([]domain.OwedDebt, error)
}

// FriendRepo is the ledger's read-only view of relationships: the confirmed
// friend set and nothing else.
type FriendRepo interface {
	ListFriends(ctx context.Context, userID int) ([]domain.User, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrValidation is the base of every reject-before-write failure. Callers can
// retry with corrected input; nothing has been mutated.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidAmount         = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrNoParticipants        = fmt.Errorf("%w: at least one participant required", ErrValidation)
	ErrPayerIsParticipant    = fmt.Errorf("%w: payer cannot be listed as a participant", ErrValidation)
	ErrNotFriends            = fmt.Errorf("%w: participant is not a confirmed friend", ErrValidation)
	ErrEmptySplit            = fmt.Errorf("%w: split produces no debts", ErrValidation)
	ErrSplitExceedsTotal     = fmt.Errorf("%w: custom amounts exceed the total", ErrValidation)
	ErrUnknownSplitMode      = fmt.Errorf("%w: unknown split mode", ErrValidation)
	ErrPaymentExceedsBalance = fmt.Errorf("%w: payment exceeds the outstanding balance", ErrValidation)
)

// ErrInconsistentLedger marks a state that valid operations cannot produce,
// such as a debt paid above its owed amount. Never repaired in place.
var ErrInconsistentLedger = errors.New("inconsistent ledger state")

type Service struct {
	ledgerRepo LedgerRepo
	friendRepo FriendRepo
	txManager  TXManager
}

func New(ledgerRepo LedgerRepo, friendRepo FriendRepo, txManager TXManager) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		friendRepo: friendRepo,
		txManager:  txManager,
	}
}

// ListPaidExpenses returns the expenses the user fronted, newest first.
func (s *Service) ListPaidExpenses(ctx context.Context, userID int) ([]domain.Expense, error) {
	expenses, err := s.ledgerRepo.FindPaidByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch paid expenses", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

// ListOwedDebts returns the debts the user owes, newest first.
func (s *Service) ListOwedDebts(ctx context.Context, userID int) ([]domain.OwedDebt, error) {
	debts, err := s.ledgerRepo.FindOwedByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch owed debts", zap.Error(err))
		return nil, err
	}
	return debts, nil
}
