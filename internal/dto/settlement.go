package dto

import "github.com/shopspring/decimal"

type RecordPaymentRequestDTO struct {
	FriendID int             `json:"friend_id" example:"2"`
	Amount   decimal.Decimal `json:"amount" example:"45"`
}

type RecordPaymentResponseDTO struct {
	Message      string    `json:"message"`
	UpdatedDebts []DebtDTO `json:"updated_debts"`
}
