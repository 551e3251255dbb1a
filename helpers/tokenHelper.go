package helpers

import (
	"errors"
	"os"
	"time"

	"smart-restaurant/models"

	"github.com/dgrijalva/jwt-go"
)

// SignedDetails is the token payload: {id, name, role, exp}. The role is
// baked in at issuance and never re-checked against the live user record,
// so a promotion only takes effect after the next login.
type SignedDetails struct {
	Uid  string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// TokenExpiry reads JWT_EXPIRES as a Go duration, falling back to 24h.
func TokenExpiry() time.Duration {
	if v := os.Getenv("JWT_EXPIRES"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 24 * time.Hour
}

func GenerateToken(uid string, name string, role models.Role) (string, error) {
	claims := SignedDetails{
		Uid:  uid,
		Name: name,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenExpiry()).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return secretKey(), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
