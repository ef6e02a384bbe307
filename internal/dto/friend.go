package dto

import "time"

type FriendDTO struct {
	ID     int    `json:"id" example:"2"`
	Name   string `json:"name" example:"Bob Example"`
	Handle string `json:"handle,omitempty" example:"bob"`
}

type IncomingRequestDTO struct {
	ID        int       `json:"id" example:"7"`
	Sender    FriendDTO `json:"sender"`
	CreatedAt time.Time `json:"created_at" example:"2024-11-02T15:04:05+03:00"`
}

type UserSearchResultDTO struct {
	ID     int    `json:"id" example:"5"`
	Name   string `json:"name" example:"Carol Example"`
	Handle string `json:"handle,omitempty" example:"carol"`
}
