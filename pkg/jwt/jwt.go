package jwt

import (
	"errors"
	"time"

	"vaccination-management/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every rejection: expiry, tampering, wrong algorithm or malformed input.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries only the subject. Roles are always re-read from the store.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	TokenID string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
	now    func() time.Time
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg, now: time.Now}
}

// GenerateAccessToken signs a token for userID and returns it with its token id.
func (s *JWTService) GenerateAccessToken(userID uuid.UUID) (string, string, error) {
	tokenID := uuid.New().String()
	now := s.now()
	claims := Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject != "" && claims.Subject != claims.UserID.String() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Issue signs a token for userID and reports how long it stays valid.
func (s *JWTService) Issue(userID uuid.UUID) (string, time.Duration, error) {
	token, _, err := s.GenerateAccessToken(userID)
	if err != nil {
		return "", 0, err
	}
	return token, s.config.AccessExpiry, nil
}

// Verify returns the token's subject or ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (uuid.UUID, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
