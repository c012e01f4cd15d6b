package models

import "time"

// LoginRequest учетные данные
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse access токен
type LoginResponse struct {
	Token             string    `json:"token"`
	ExpiresAt         time.Time `json:"expiresAt"`
	UserID            int64     `json:"userId"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	ScholarshipHolder bool      `json:"scholarshipHolder"`
}
