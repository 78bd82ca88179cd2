package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secretKey = []byte("pawpaw_dev_secret")

// SetSecret installs the signing secret from configuration. Tokens signed
// under a previous secret stop validating once it changes.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type jwtUserDataClaims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

func CreateToken(id int, username string) (string, error) {
	claims := jwtUserDataClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		UserID:   id,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ValidateToken(tokenString string) (*jwtUserDataClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtUserDataClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*jwtUserDataClaims)
	if !ok {
		return nil, errors.New("could not parse claims")
	}

	return claims, nil
}
