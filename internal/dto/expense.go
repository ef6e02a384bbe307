package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomAmountDTO struct {
	UserID int             `json:"user_id" example:"2"`
	Amount decimal.Decimal `json:"amount" example:"40"`
}

type CreateExpenseRequestDTO struct {
	Description    string            `json:"description" validate:"required,max=200" example:"Dinner"`
	TotalAmount    decimal.Decimal   `json:"total_amount" example:"30"`
	ParticipantIDs []int             `json:"participant_ids" example:"2,3"`
	SplitMode      string            `json:"split_mode" validate:"oneof=even custom" example:"even"`
	CustomAmounts  []CustomAmountDTO `json:"custom_amounts,omitempty"`
}

type DebtDTO struct {
	ID          int             `json:"id" example:"10"`
	ExpenseID   int             `json:"expense_id" example:"4"`
	DebtorID    int             `json:"debtor_id" example:"2"`
	Amount      decimal.Decimal `json:"amount" example:"10"`
	PaidAmount  decimal.Decimal `json:"paid_amount" example:"0"`
	IsFullyPaid bool            `json:"is_fully_paid" example:"false"`
}

type ExpenseResponseDTO struct {
	ID          int             `json:"id" example:"4"`
	Description string          `json:"description" example:"Dinner"`
	TotalAmount decimal.Decimal `json:"total_amount" example:"30"`
	PayerID     int             `json:"payer_id" example:"1"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-11-02T15:04:05+03:00"`
	Debts       []DebtDTO       `json:"debts,omitempty"`
}

type OwedDebtResponseDTO struct {
	ID          int             `json:"id" example:"10"`
	ExpenseID   int             `json:"expense_id" example:"4"`
	Description string          `json:"description" example:"Dinner"`
	PayerID     int             `json:"payer_id" example:"1"`
	PayerName   string          `json:"payer_name" example:"Alice Example"`
	Amount      decimal.Decimal `json:"amount" example:"10"`
	PaidAmount  decimal.Decimal `json:"paid_amount" example:"0"`
	IsFullyPaid bool            `json:"is_fully_paid" example:"false"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-11-02T15:04:05+03:00"`
}
