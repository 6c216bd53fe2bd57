package dto

import "time"

// LoginRequest is the single-owner password login payload
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=1,max=128"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
