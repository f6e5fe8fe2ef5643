package auth

import "errors"

type RegisterDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"     binding:"required"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

var (
	errUserNotFound  = errors.New("auth user not found")
	errWrongPassword = errors.New("auth wrong password")
	errEmailTaken    = errors.New("email already registered")
)
