package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/pkg/money"
)

// RecordPayment allocates a payment the recorder received from a friend
// across the friend's outstanding debts, oldest expense first. The whole
// read-validate-mutate sequence runs in one transaction over row locks, so
// two settlements for the same pair cannot both read the same balance and
// overshoot it.
func (s *Service) RecordPayment(ctx context.Context, recorderID, friendID int, amount decimal.Decimal) ([]domain.Debt, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	var updated []domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pairDebts, err := s.ledgerRepo.FindPairDebtsForUpdate(ctx, recorderID, friendID)
		if err != nil {
			zap.L().Error("failed to lock pair debts", zap.Error(err))
			return err
		}

		// Fresh pair balance under the locks. The read that produced the
		// amount may be stale; this one cannot be.
		net := decimal.Zero
		for _, debt := range pairDebts {
			if debt.PaidAmount.Sub(debt.Amount).GreaterThan(money.Epsilon) {
				zap.L().Error("debt paid above owed amount",
					zap.Int("debt_id", debt.ID),
					zap.String("owed", debt.Amount.String()),
					zap.String("paid", debt.PaidAmount.String()))
				return ErrInconsistentLedger
			}
			outstanding := money.Outstanding(debt.Amount, debt.PaidAmount)
			if debt.PayerID == recorderID {
				net = net.Add(outstanding)
			} else {
				net = net.Sub(outstanding)
			}
		}
		if amount.GreaterThan(net.Add(money.Epsilon)) {
			return ErrPaymentExceedsBalance
		}

		remaining := amount
		for i := range pairDebts {
			debt := &pairDebts[i]
			if debt.PayerID != recorderID || debt.IsFullyPaid {
				continue
			}
			outstanding := money.Outstanding(debt.Amount, debt.PaidAmount)
			if outstanding.IsZero() {
				continue
			}

			applied := decimal.Min(remaining, outstanding)
			debt.PaidAmount = debt.PaidAmount.Add(applied)
			remaining = remaining.Sub(applied)
			if money.IsSettled(debt.Amount, debt.PaidAmount) {
				// Informational flag only; paid is never snapped to owed.
				debt.IsFullyPaid = true
			}

			if err := s.ledgerRepo.UpdateDebtPaid(ctx, &debt.Debt); err != nil {
				zap.L().Error("failed to update debt", zap.Error(err))
				return err
			}
			updated = append(updated, debt.Debt)

			if remaining.Sign() <= 0 {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.Int("recorder_id", recorderID),
		zap.Int("friend_id", friendID),
		zap.String("amount", amount.String()),
		zap.Int("debts_touched", len(updated)))
	return updated, nil
}
