package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=100" example:"Alice Example"`
	Handle   string `json:"handle" validate:"omitempty,min=3,max=80" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
