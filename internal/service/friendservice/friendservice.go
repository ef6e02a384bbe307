package friendservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
)

type FriendRepo interface {
	CreateRequest(ctx context.Context, senderID, receiverID int) (*domain.FriendRequest, error)
	GetRequestByID(ctx context.Context, requestID int) (*domain.FriendRequest, error)
	FindRequestBetween(ctx context.Context, userID, otherID int) (*domain.FriendRequest, error)
	ListIncomingRequests(ctx context.Context, receiverID int) ([]domain.IncomingRequest, error)
	DeleteRequest(ctx context.Context, requestID int) error
	FindFriendshipBetween(ctx context.Context, userID, otherID int) (*domain.Friendship, error)
	AcceptRequest(ctx context.Context, request *domain.FriendRequest) (*domain.Friendship, error)
	ListFriends(ctx context.Context, userID int) ([]domain.User, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	Search(ctx context.Context, userID int, query string, limit int) ([]domain.User, error)
}

var (
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends  = errors.New("already friends")
	ErrRequestPending  = errors.New("friend request already pending")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrNotAllowed      = errors.New("request addressed to another user")
)

const (
	searchLimit    = 10
	minSearchQuery = 2
)

type Service struct {
	friendRepo FriendRepo
	userRepo   UserRepo
}

func New(friendRepo FriendRepo, userRepo UserRepo) *Service {
	return &Service{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

func (s *Service) SendRequest(ctx context.Context, senderID, receiverID int) (*domain.FriendRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}
	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		zap.L().Error("can't find receiver", zap.Error(err))
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	friendship, err := s.friendRepo.FindFriendshipBetween(ctx, senderID, receiverID)
	if err != nil {
		zap.L().Error("can't check friendship", zap.Error(err))
		return nil, err
	}
	if friendship != nil {
		return nil, ErrAlreadyFriends
	}

	pending, err := s.friendRepo.FindRequestBetween(ctx, senderID, receiverID)
	if err != nil {
		zap.L().Error("can't check pending request", zap.Error(err))
		return nil, err
	}
	if pending != nil {
		return nil, ErrRequestPending
	}

	request, err := s.friendRepo.CreateRequest(ctx, senderID, receiverID)
	if err != nil {
		zap.L().Error("can't create friend request", zap.Error(err))
		return nil, err
	}
	zap.L().Info("friend request sent", zap.Int("sender_id", senderID), zap.Int("receiver_id", receiverID))
	return request, nil
}

// AcceptRequest confirms a pending request addressed to the user: one
// friendship appears and the request disappears as a single unit.
func (s *Service) AcceptRequest(ctx context.Context, receiverID, requestID int) (*domain.Friendship, error) {
	request, err := s.getOwnRequest(ctx, receiverID, requestID)
	if err != nil {
		return nil, err
	}
	friendship, err := s.friendRepo.AcceptRequest(ctx, request)
	if err != nil {
		zap.L().Error("can't accept friend request", zap.Error(err))
		return nil, err
	}
	zap.L().Info("friend request accepted", zap.Int("request_id", requestID))
	return friendship, nil
}

func (s *Service) DeclineRequest(ctx context.Context, receiverID, requestID int) error {
	request, err := s.getOwnRequest(ctx, receiverID, requestID)
	if err != nil {
		return err
	}
	if err := s.friendRepo.DeleteRequest(ctx, request.ID); err != nil {
		zap.L().Error("can't decline friend request", zap.Error(err))
		return err
	}
	zap.L().Info("friend request declined", zap.Int("request_id", requestID))
	return nil
}

func (s *Service) getOwnRequest(ctx context.Context, receiverID, requestID int) (*domain.FriendRequest, error) {
	request, err := s.friendRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		zap.L().Error("can't find friend request", zap.Error(err))
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.ReceiverID != receiverID {
		return nil, ErrNotAllowed
	}
	return request, nil
}

func (s *Service) ListFriends(ctx context.Context, userID int) ([]domain.User, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch friends", zap.Error(err))
		return nil, err
	}
	return friends, nil
}

func (s *Service) ListIncomingRequests(ctx context.Context, userID int) ([]domain.IncomingRequest, error) {
	requests, err := s.friendRepo.ListIncomingRequests(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch incoming requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// SearchUsers finds users by handle, hiding the searcher, existing friends
// and anyone with a pending request either way. Queries shorter than two
// characters return nothing.
func (s *Service) SearchUsers(ctx context.Context, userID int, query string) ([]domain.User, error) {
	if len(query) < minSearchQuery {
		return []domain.User{}, nil
	}
	users, err := s.userRepo.Search(ctx, userID, query, searchLimit)
	if err != nil {
		zap.L().Error("failed to search users", zap.Error(err))
		return nil, err
	}
	return users, nil
}
