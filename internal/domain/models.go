package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	FriendRequestPending = "pending"

	SplitModeEven   = "even"
	SplitModeCustom = "custom"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Handle       string    `db:"handle"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type FriendRequest struct {
	ID         int       `db:"id"`
	SenderID   int       `db:"sender_id"`
	ReceiverID int       `db:"receiver_id"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Friendship is one confirmed pair. At most one row exists per unordered pair.
type Friendship struct {
	ID        int       `db:"id"`
	User1ID   int       `db:"user1_id"`
	User2ID   int       `db:"user2_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Expense records one event where the payer fronted the total amount for a
// group. The id doubles as creation order: settlements pay off debts of older
// expenses first.
type Expense struct {
	ID          int             `db:"id"`
	Description string          `db:"description"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PayerID     int             `db:"payer_id"`
	CreatedAt   time.Time       `db:"created_at"`

	Debts []Debt
}

// Debt is one debtor's obligation to the payer of one expense.
// Invariant: 0 <= PaidAmount <= Amount, within the money epsilon.
type Debt struct {
	ID          int             `db:"id"`
	ExpenseID   int             `db:"expense_id"`
	DebtorID    int             `db:"debtor_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	IsFullyPaid bool            `db:"is_fully_paid"`
}

// DebtWithPayer is a debt row joined with its expense's payer, the unit the
// balance and settlement logic works in.
type DebtWithPayer struct {
	Debt
	PayerID int `db:"payer_id"`
}

// OwedDebt is a debt the user owes, joined with expense and payer details for
// history listings.
type OwedDebt struct {
	Debt
	Description string    `db:"description"`
	PayerID     int       `db:"payer_id"`
	PayerName   string    `db:"payer_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// FriendBalance is the signed net position against one friend.
// Positive: the friend owes the user. Negative: the user owes the friend.
type FriendBalance struct {
	FriendID int
	Name     string
	Handle   string
	Amount   decimal.Decimal
}

// IncomingRequest is a pending friend request joined with its sender.
type IncomingRequest struct {
	ID        int
	Sender    User
	CreatedAt time.Time
}
