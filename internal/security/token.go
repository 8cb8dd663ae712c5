package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// ReviewerClaims carries the reviewer identity recorded as reviewed_by on
// terminal transitions. Token issuance lives in the platform's auth
// service; this package only generates tokens for tests and validates
// incoming ones.
type ReviewerClaims struct {
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Email      string    `json:"email,omitempty"`
	Roles      []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(reviewerID uuid.UUID, email string, roles []string) (string, error)
	ValidateToken(tokenString string) (*ReviewerClaims, error)
}

type tokenManager struct {
	secret       []byte
	accessExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiryMinutes int) TokenManager {
	return &tokenManager{
		secret:       []byte(secret),
		accessExpiry: time.Duration(accessExpiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(reviewerID uuid.UUID, email string, roles []string) (string, error) {
	claims := ReviewerClaims{
		ReviewerID: reviewerID,
		Email:      email,
		Roles:      roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   reviewerID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "auth-service",
			Audience:  jwt.ClaimStrings{"registration-review"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*ReviewerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ReviewerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ReviewerClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	// Fall back to the subject when the custom claim was not set by the issuer.
	if claims.ReviewerID == uuid.Nil && claims.Subject != "" {
		id, perr := uuid.Parse(claims.Subject)
		if perr != nil {
			return nil, ErrInvalidToken
		}
		claims.ReviewerID = id
	}
	if claims.ReviewerID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
