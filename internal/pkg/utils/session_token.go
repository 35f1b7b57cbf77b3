package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const sessionTokenIssuer = "clinic-dashboard"

var errInvalidSessionToken = errors.New("invalid session token")

// SessionClaims is the payload of the dashboard session token. The session
// itself lives in redis, the token only points at it.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func GenerateSessionJWT(sessionID, secret string, expiryInHours int) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryInHours) * time.Hour)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseJWT verifies an HS256 session token and returns the session id in it.
func ParseJWT(tokenString, secret string) (string, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.SessionID == "" || !claims.VerifyIssuer(sessionTokenIssuer, true) {
		return "", errInvalidSessionToken
	}
	return claims.SessionID, nil
}
