package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var tokenSignatureAlg = jwt.SigningMethodHS256

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrNonValidToken = errors.New("token did not pass validation")
)

type SessionClaim struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Sessions issues and validates signed session tokens for the HTTP layer.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Sessions) Issue(principal *Principal) (string, error) {
	now := time.Now().UTC()
	claim := &SessionClaim{
		Username: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tokenSignatureAlg, claim)
	return token.SignedString(s.secret)
}

func (s *Sessions) Decode(tokenString string) (*Principal, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &SessionClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{tokenSignatureAlg.Alg()}))

	if err != nil {
		return nil, err
	} else if parsedToken == nil || !parsedToken.Valid {
		return nil, ErrNonValidToken
	}

	claims, ok := parsedToken.Claims.(*SessionClaim)
	if !ok {
		return nil, ErrNonValidToken
	}
	return &Principal{Name: claims.Username}, nil
}
