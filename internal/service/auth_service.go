package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"milletsurvey/internal/model"
)

var (
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// AuthService gates the analytics dashboard behind the institutional access
// code, exchanging it for a bearer token.
type AuthService struct {
	accessCode string
	jwtSecret  []byte
}

// NewAuthService creates a new auth service
func NewAuthService(accessCode, jwtSecret string) *AuthService {
	return &AuthService{
		accessCode: accessCode,
		jwtSecret:  []byte(jwtSecret),
	}
}

// Login validates the access code and returns a signed admin token.
func (s *AuthService) Login(accessCode string) (*model.LoginResponse, error) {
	if accessCode != s.accessCode {
		return nil, ErrInvalidAccessCode
	}

	adminID := "admin_" + uuid.New().String()[:8]

	claims := &model.AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AdminID: adminID,
	}, nil
}

// ValidateToken validates an admin JWT and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
