package token

import (
	"errors"
	"fmt"
	"time"

	"plink_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.DebugClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.DebugClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.DebugClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(*model.DebugClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
