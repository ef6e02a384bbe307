package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/splittr/splittr/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const findByEmailQuery = `
        SELECT id, name, COALESCE(handle, ''), email, password_hash
        FROM users
        WHERE email = $1
    `

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "alice@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "handle", "email", "password_hash"}).
					AddRow(1, "Alice Example", "alice", "alice@example.com", "hashed_password")
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Name:         "Alice Example",
				Handle:       "alice",
				Email:        "alice@example.com",
				PasswordHash: "hashed_password",
			},
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "alice@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, name, COALESCE(handle, ''), email
        FROM users
        WHERE id = $1
    `

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "handle", "email"}).
					AddRow(2, "Bob Example", "bob", "bob@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 2, Name: "Bob Example", Handle: "bob", Email: "bob@example.com"},
		},
		{
			name:   "User not found",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 2,
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
			result, err := repo.GetByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO users (name, handle, email, password_hash)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id
	`

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{Name: "Alice Example", Handle: "alice", Email: "alice@example.com", PasswordHash: "hashed_password"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("Alice Example", "alice", "alice@example.com", "hashed_password").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			user: &domain.User{Name: "Alice Example", Email: "alice@example.com", PasswordHash: "hashed_password"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("Alice Example", "", "alice@example.com", "hashed_password").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_Search(t *testing.T) {
	repo, mock := NewMock(t)

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

	tests := []struct {
		name      string
		query     string
		mockSetup func()
		expectErr bool
		result    []domain.User
	}{
		{
			name:  "Matches found",
			query: "ca",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "handle", "email"}).
					AddRow(5, "Carol Example", "carol", "carol@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(sql)).
					WithArgs(1, "ca", 10).
					WillReturnRows(rows)
			},
			result: []domain.User{{ID: 5, Name: "Carol Example", Handle: "carol", Email: "carol@example.com"}},
		},
		{
			name:  "No matches",
			query: "zz",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "handle", "email"})
				mock.ExpectQuery(regexp.QuoteMeta(sql)).
					WithArgs(1, "zz", 10).
					WillReturnRows(rows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			query: "ca",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(sql)).
					WithArgs(1, "ca", 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Search(context.Background(), 1, tt.query, 10)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
