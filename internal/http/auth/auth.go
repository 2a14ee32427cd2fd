// Package auth resolves the acting user for each request.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const ActorHeader = "X-Actor-ID"

var (
	ErrMissingActor = errors.New("missing actor")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type ctxKey struct{}

// Middleware resolves the actor from a bearer token signed with secret. With
// an empty secret the actor is read from the X-Actor-ID header instead.
// Requests without an actor are rejected with 401.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := resolve(r, secret)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func resolve(r *http.Request, secret string) (string, error) {
	if secret == "" {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			return "", ErrMissingActor
		}

		return actor, nil
	}

	header := r.Header.Get("Authorization")

	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", ErrMissingActor
	}

	return ParseToken(raw, secret)
}

// ParseToken validates an HS256 token and returns its subject.
func ParseToken(raw, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// Actor returns the actor stored by Middleware, or "" outside it.
func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(ctxKey{}).(string)
	return actor
}
