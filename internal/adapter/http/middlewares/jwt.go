package middlewares

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTRoleResolver resolves roles from HS256 tokens issued by the auth
// service. Only the role claim is consumed here.
func JWTRoleResolver(secret string) RoleResolver {
	return func(_ context.Context, token string) (string, error) {
		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			return "", err
		}
		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			return "", errors.New("unexpected claims type")
		}
		role, _ := claims["role"].(string)
		if role == "" {
			return "", errors.New("token has no role claim")
		}
		return role, nil
	}
}
