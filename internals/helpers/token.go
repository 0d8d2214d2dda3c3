// file: internals/helpers/token.go
package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pengumumanku_backend/internals/configs"
)

const AccessTokenTTL = 24 * time.Hour

// IssueAccessToken membuat access token HS256 untuk user yang sudah lolos login.
func IssueAccessToken(userID uuid.UUID, userName string) (token string, expiresAt time.Time, err error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, errors.New("JWT secret belum dikonfigurasi")
	}

	now := time.Now().UTC()
	expiresAt = now.Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// TokenExpiry membaca klaim exp tanpa memverifikasi signature
// (dipakai logout untuk tahu sampai kapan token harus di-blacklist).
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
