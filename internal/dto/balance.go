package dto

import "github.com/shopspring/decimal"

// FriendBalanceDTO carries one signed net figure per friend: positive means
// the friend owes the user, negative means the user owes the friend.
type FriendBalanceDTO struct {
	FriendID int             `json:"friend_id" example:"2"`
	Name     string          `json:"name" example:"Bob Example"`
	Handle   string          `json:"handle,omitempty" example:"bob"`
	Amount   decimal.Decimal `json:"amount" example:"50"`
}
