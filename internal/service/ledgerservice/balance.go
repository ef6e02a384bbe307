package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/pkg/money"
)

// ComputeBalances aggregates all outstanding debts between the user and each
// confirmed friend into one signed figure per friend id. Positive: the friend
// owes the user. Recomputed from scratch on every call; settlements mutate
// debts between reads, so nothing here may be cached.
func (s *Service) ComputeBalances(ctx context.Context, userID int) (map[int]decimal.Decimal, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch friends", zap.Error(err))
		return nil, err
	}

	balances := make(map[int]decimal.Decimal, len(friends))
	for _, friend := range friends {
		balances[friend.ID] = decimal.Zero
	}
	if len(friends) == 0 {
		return balances, nil
	}

	debts, err := s.ledgerRepo.FindDebtsForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch debts", zap.Error(err))
		return nil, err
	}

	for _, debt := range debts {
		outstanding := money.Outstanding(debt.Amount, debt.PaidAmount)
		if outstanding.IsZero() {
			continue
		}
		switch {
		case debt.PayerID == userID:
			// A friend owes the user.
			if current, ok := balances[debt.DebtorID]; ok {
				balances[debt.DebtorID] = current.Add(outstanding)
			}
		case debt.DebtorID == userID:
			// The user owes a friend.
			if current, ok := balances[debt.PayerID]; ok {
				balances[debt.PayerID] = current.Sub(outstanding)
			}
		}
	}
	return balances, nil
}

// FriendBalances is ComputeBalances joined with friend identity, in the
// friends' listing order.
func (s *Service) FriendBalances(ctx context.Context, userID int) ([]domain.FriendBalance, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch friends", zap.Error(err))
		return nil, err
	}
	balances, err := s.ComputeBalances(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FriendBalance, 0, len(friends))
	for _, friend := range friends {
		result = append(result, domain.FriendBalance{
			FriendID: friend.ID,
			Name:     friend.Name,
			Handle:   friend.Handle,
			Amount:   balances[friend.ID],
		})
	}
	return result, nil
}
