package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
)

// CreateExpense validates the split, builds one debt per participant and
// persists the expense with all its debts atomically. The payer's own share
// is implicit: it is never stored as a debt.
func (s *Service) CreateExpense(ctx context.Context, payerID int, description string, total decimal.Decimal, participantIDs []int, splitMode string, customAmounts map[int]decimal.Decimal) (*domain.Expense, error) {
	if total.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(participantIDs) == 0 {
		return nil, ErrNoParticipants
	}
	for _, id := range participantIDs {
		if id == payerID {
			return nil, ErrPayerIsParticipant
		}
	}

	friends, err := s.friendRepo.ListFriends(ctx, payerID)
	if err != nil {
		zap.L().Error("failed to fetch friends", zap.Error(err))
		return nil, err
	}
	friendSet := make(map[int]struct{}, len(friends))
	for _, friend := range friends {
		friendSet[friend.ID] = struct{}{}
	}
	for _, id := range participantIDs {
		if _, ok := friendSet[id]; !ok {
			return nil, ErrNotFriends
		}
	}

	var debts []domain.Debt
	switch splitMode {
	case domain.SplitModeEven:
		// The +1 is the payer's own share.
		perPerson := total.Div(decimal.NewFromInt(int64(len(participantIDs) + 1)))
		for _, id := range participantIDs {
			debts = append(debts, domain.Debt{
				DebtorID:   id,
				Amount:     perPerson,
				PaidAmount: decimal.Zero,
			})
		}
	case domain.SplitModeCustom:
		sum := decimal.Zero
		for _, id := range participantIDs {
			amount, ok := customAmounts[id]
			if !ok || amount.Sign() == 0 {
				// No amount means no debt; the remainder is the payer's share.
				continue
			}
			if amount.Sign() < 0 {
				return nil, ErrInvalidAmount
			}
			sum = sum.Add(amount)
			debts = append(debts, domain.Debt{
				DebtorID:   id,
				Amount:     amount,
				PaidAmount: decimal.Zero,
			})
		}
		if sum.Round(2).GreaterThan(total.Round(2)) {
			return nil, ErrSplitExceedsTotal
		}
		if len(debts) == 0 {
			return nil, ErrEmptySplit
		}
	default:
		return nil, ErrUnknownSplitMode
	}

	expense := &domain.Expense{
		Description: description,
		TotalAmount: total,
		PayerID:     payerID,
		Debts:       debts,
	}
	created, err := s.ledgerRepo.CreateWithDebts(ctx, expense)
	if err != nil {
		zap.L().Error("failed to create expense", zap.Error(err))
		return nil, err
	}
	zap.L().Info("expense created",
		zap.Int("expense_id", created.ID),
		zap.Int("payer_id", payerID),
		zap.Int("debts", len(created.Debts)))
	return created, nil
}
