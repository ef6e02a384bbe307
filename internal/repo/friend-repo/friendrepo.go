package friendrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) CreateRequest(ctx context.Context, senderID, receiverID int) (*domain.FriendRequest, error) {
	query := `
		INSERT INTO friend_requests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	request := &domain.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     domain.FriendRequestPending,
	}
	err := r.db.QueryRow(ctx, query, senderID, receiverID, domain.FriendRequestPending).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		zap.L().Error("can't save friend request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) GetRequestByID(ctx context.Context, requestID int) (*domain.FriendRequest, error) {
	query := `
        SELECT id, sender_id, receiver_id, status, created_at
        FROM friend_requests
        WHERE id = $1
    `
	var request domain.FriendRequest
	err := r.db.QueryRow(ctx, query, requestID).Scan(&request.ID, &request.SenderID, &request.ReceiverID, &request.Status, &request.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find friend request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

// FindRequestBetween matches a pending request in either direction.
func (r *Repository) FindRequestBetween(ctx context.Context, userID, otherID int) (*domain.FriendRequest, error) {
	query := `
        SELECT id, sender_id, receiver_id, status, created_at
        FROM friend_requests
        WHERE (sender_id = $1 AND receiver_id = $2)
           OR (sender_id = $2 AND receiver_id = $1)
    `
	var request domain.FriendRequest
	err := r.db.QueryRow(ctx, query, userID, otherID).Scan(&request.ID, &request.SenderID, &request.ReceiverID, &request.Status, &request.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find friend request between users", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) ListIncomingRequests(ctx context.Context, receiverID int) ([]domain.IncomingRequest, error) {
	query := `
        SELECT r.id, r.created_at, u.id, u.name, COALESCE(u.handle, ''), u.email
        FROM friend_requests r
        JOIN users u ON u.id = r.sender_id
        WHERE r.receiver_id = $1 AND r.status = $2
        ORDER BY r.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, receiverID, domain.FriendRequestPending)
	if err != nil {
		zap.L().Error("can't get incoming friend requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.IncomingRequest
	for rows.Next() {
		var req domain.IncomingRequest
		err := rows.Scan(&req.ID, &req.CreatedAt, &req.Sender.ID, &req.Sender.Name, &req.Sender.Handle, &req.Sender.Email)
		if err != nil {
			zap.L().Error("can't scan friend request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *Repository) DeleteRequest(ctx context.Context, requestID int) error {
	query := `
		DELETE FROM friend_requests
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, requestID)
	if err != nil {
		zap.L().Error("can't delete friend request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindFriendshipBetween(ctx context.Context, userID, otherID int) (*domain.Friendship, error) {
	query := `
        SELECT id, user1_id, user2_id, created_at
        FROM friendships
        WHERE (user1_id = $1 AND user2_id = $2)
           OR (user1_id = $2 AND user2_id = $1)
    `
	var friendship domain.Friendship
	err := r.db.QueryRow(ctx, query, userID, otherID).Scan(&friendship.ID, &friendship.User1ID, &friendship.User2ID, &friendship.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find friendship", zap.Error(err))
		return nil, err
	}
	return &friendship, nil
}

// AcceptRequest turns a pending request into a friendship. The insert and the
// request deletion commit as one unit.
func (r *Repository) AcceptRequest(ctx context.Context, request *domain.FriendRequest) (*domain.Friendship, error) {
	query := `
		INSERT INTO friendships (user1_id, user2_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	friendship := &domain.Friendship{
		User1ID: request.SenderID,
		User2ID: request.ReceiverID,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, request.SenderID, request.ReceiverID).Scan(&friendship.ID, &friendship.CreatedAt)
		if err != nil {
			zap.L().Error("can't save friendship", zap.Error(err))
			return err
		}
		return r.DeleteRequest(ctx, request.ID)
	})
	if err != nil {
		return nil, err
	}
	return friendship, nil
}

// ListFriends returns the confirmed friends of a user, the only relationship
// view the ledger reads.
func (r *Repository) ListFriends(ctx context.Context, userID int) ([]domain.User, error) {
	query := `
        SELECT u.id, u.name, COALESCE(u.handle, ''), u.email
        FROM friendships f
        JOIN users u ON u.id = CASE WHEN f.user1_id = $1 THEN f.user2_id ELSE f.user1_id END
        WHERE f.user1_id = $1 OR f.user2_id = $1
        ORDER BY u.name
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get friends", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var friends []domain.User
	for rows.Next() {
		var friend domain.User
		err := rows.Scan(&friend.ID, &friend.Name, &friend.Handle, &friend.Email)
		if err != nil {
			zap.L().Error("can't scan friend row", zap.Error(err))
			return nil, err
		}
		friends = append(friends, friend)
	}
	return friends, nil
}
