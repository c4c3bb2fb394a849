package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims issued after access-code login
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	AccessCode string `json:"accessCode"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}
