package user

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/trezcool/learnhub/core"
)

var (
	nowFunc = time.Now // mockable

	// errors
	errInvalidToken = errors.New("invalid token")
)

// Claims represents the authorization claims embedded in a session token.
type Claims struct {
	jwt.StandardClaims
	IsStudent bool `json:"is_student,omitempty"`
	IsAdmin   bool `json:"is_admin,omitempty"`
}

// makeToken generates a signed session token for a given User.
func makeToken(usr User) (string, error) {
	now := nowFunc()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.GetString("appName"),
			Subject:   usr.ID,
			ExpiresAt: now.Add(core.Conf.GetDuration("sessionExpirationDelta")).Unix(),
			IssuedAt:  now.Unix(),
		},
		IsStudent: usr.IsStudent(),
		IsAdmin:   usr.IsAdmin(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(core.Conf.GetString("secretKey")))
}

// verifyToken checks that a session token belongs to the given User and has
// not expired or been tampered with.
func verifyToken(tokenStr string, usr User) (*Claims, error) {
	if tokenStr == "" {
		return nil, errInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(core.Conf.GetString("secretKey")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != usr.ID {
		return nil, errInvalidToken
	}
	return claims, nil
}
