package api

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Login    string `json:"login" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password,omitempty"`
}

// Response DTOs

type UserSummary struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

type CreateUserResponse struct {
	Id int64 `json:"id"`
}
