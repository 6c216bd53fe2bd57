package models

import "github.com/golang-jwt/jwt/v5"

// OwnerClaims is the JWT payload for the single ledger owner session
type OwnerClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}
