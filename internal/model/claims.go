package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type DebugClaims struct {
	jwt.RegisteredClaims
}
