package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mytasks/mytasks-server/internal/model"
)

// Claims represents session token claims: the user identity plus the
// registered issued-at and expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// sessionTTL is fixed; there is no refresh mechanism.
const sessionTTL = time.Hour

// Generate creates a signed session token for the user, valid for one hour
// from issuance.
func (j *JWT) Generate(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.ErrInvalidToken
	}

	return tokenString, nil
}

// Parse validates signature and expiry and extracts the session claims.
// Expired and tampered tokens are indistinguishable to callers: both return
// model.ErrInvalidToken.
func (j *JWT) Parse(tokenString string) (model.SessionClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return model.SessionClaims{}, model.ErrInvalidToken
	}

	return model.SessionClaims{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
