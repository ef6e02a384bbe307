package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, COALESCE(handle, ''), email, password_hash
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Handle, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, name, COALESCE(handle, ''), email
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Name, &user.Handle, &user.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, handle, email, password_hash)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Handle, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Search finds users by handle substring, excluding the searching user, their
// friends and anyone with a pending request in either direction.
func (repo *Repository) Search(ctx context.Context, userID int, query string, limit int) ([]domain.User, error) {
	sql := `
        SELECT u.id, u.name, COALESCE(u.handle, ''), u.email
        FROM users u
        WHERE u.handle ILIKE '%' || $2 || '%'
          AND u.id <> $1
          AND NOT EXISTS (
              SELECT 1 FROM friendships f
              WHERE (f.user1_id = $1 AND f.user2_id = u.id)
                 OR (f.user2_id = $1 AND f.user1_id = u.id)
          )
          AND NOT EXISTS (
              SELECT 1 FROM friend_requests r
              WHERE (r.sender_id = $1 AND r.receiver_id = u.id)
                 OR (r.receiver_id = $1 AND r.sender_id = u.id)
          )
        ORDER BY u.handle
        LIMIT $3
    `
	rows, err := repo.db.Query(ctx, sql, userID, query, limit)
	if err != nil {
		zap.L().Error("can't search users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Handle, &user.Email)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
