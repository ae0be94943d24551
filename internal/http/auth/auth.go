// Package auth verifies bearer tokens and exposes the caller's identity
// to handlers through the request context.
package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

// Claims is the token payload minted at login. SeamstressID is set only
// for seamstress accounts.
type Claims struct {
	jwt.RegisteredClaims
	Roles        []string `json:"roles"`
	SeamstressID *string  `json:"seamstressId,omitempty"`
}

type contextKey struct{}

type identity struct {
	userID       uuid.UUID
	roles        []string
	seamstressID *uuid.UUID
}

type Middleware struct {
	secret []byte
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

// Authenticate rejects requests without a valid HS256 bearer token and
// stores the parsed identity in the context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		var claims Claims

		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			http.Error(w, "invalid token subject", http.StatusUnauthorized)
			return
		}

		id := identity{userID: userID, roles: claims.Roles}

		if claims.SeamstressID != nil {
			sid, err := uuid.Parse(*claims.SeamstressID)
			if err != nil {
				http.Error(w, "invalid seamstress id", http.StatusUnauthorized)
				return
			}

			id.seamstressID = &sid
		}

		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree to callers holding the given role.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := fromContext(r.Context())
			if !ok || !slices.Contains(id.roles, role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func fromContext(ctx context.Context) (identity, bool) {
	id, ok := ctx.Value(contextKey{}).(identity)
	return id, ok
}

// UserID returns the authenticated caller, or uuid.Nil outside an
// authenticated subtree.
func UserID(ctx context.Context) uuid.UUID {
	id, _ := fromContext(ctx)
	return id.userID
}

// SeamstressID returns the seamstress bound to the caller's account,
// if any.
func SeamstressID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := fromContext(ctx)
	if !ok || id.seamstressID == nil {
		return uuid.Nil, false
	}

	return *id.seamstressID, true
}
