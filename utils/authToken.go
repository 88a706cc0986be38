package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.uber.org/zap"
)

const (
	// AccessTokenExpiry is the lifetime of staff access tokens.
	AccessTokenExpiry = 24 * time.Hour

	// SymmetricKeyLength is the key size PASETO v2 local tokens require.
	SymmetricKeyLength = 32
)

// Staff roles accepted on the admin routes.
const (
	RoleAdmin        = "Admin"
	RoleReceptionist = "Receptionist"
	RoleDoctor       = "Doctor"
)

var (
	ErrTokenExpired            = errors.New("token expired")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidSymmetricKey     = fmt.Errorf("symmetric key must be %d bytes long", SymmetricKeyLength)
)

// TokenClaims is the identity carried by a staff access token.
type TokenClaims struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Expiry time.Time `json:"expiry"`
}

// GenerateAccessToken encrypts claims for the given staff member.
func GenerateAccessToken(key []byte, userID, email, role string, expiry time.Duration) (string, error) {
	if len(key) != SymmetricKeyLength {
		return "", ErrInvalidSymmetricKey
	}
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Expiry: time.Now().Add(expiry),
	}
	token, err := paseto.NewV2().Encrypt(key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken decrypts the token and checks its expiry and, when given, the role.
func ValidateToken(key []byte, tokenString string, requiredRoles ...string) (*TokenClaims, error) {
	if len(key) != SymmetricKeyLength {
		return nil, ErrInvalidSymmetricKey
	}

	var claims TokenClaims
	if err := paseto.NewV2().Decrypt(tokenString, key, &claims, nil); err != nil {
		GetLogger().Debug("Token decryption failed", zap.Error(err))
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		return nil, ErrTokenExpired
	}

	if len(requiredRoles) == 0 {
		return &claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return &claims, nil
		}
	}

	GetLogger().Warn("Insufficient permissions",
		zap.Strings("required", requiredRoles),
		zap.String("role", claims.Role))
	return nil, ErrInsufficientPermissions
}
