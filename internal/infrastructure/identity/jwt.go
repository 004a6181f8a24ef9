package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
)

// Claims is the subset of identity-service access token claims we use.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 access tokens signed with the identity service's secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

func (v *JWTVerifier) Verify(_ context.Context, credential string) (*entity.Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrUnauthorized
	}

	claims := &Claims{}
	tkn, err := v.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInvalidToken
	}
	if !tkn.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}

	return &entity.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
