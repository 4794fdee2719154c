package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/pkg/response"
)

// SessionClaims for admin session JWTs
type SessionClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	jwt.RegisteredClaims
}

type contextKey string

const contextViewer contextKey = "admin_viewer"

// TokenService signs and validates admin session tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates the admin token service
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate creates a new session JWT for the account
func (s *TokenService) Generate(account *AdminAccount) (string, error) {
	claims := SessionClaims{
		AdminID: account.ID,
		Email:   account.Email,
		Role:    account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   account.ID.String(),
			Issuer:    "sawari-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a session JWT and returns its claims
func (s *TokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// AuthMiddleware authenticates the session token, reloads the account from
// the directory and injects it into the request context as the viewer. The
// viewer is always passed explicitly from here on; handlers and services
// never consult ambient session state.
func AuthMiddleware(tokens *TokenService, svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			// Reload: the token may outlive a status change
			viewer, err := svc.GetByID(r.Context(), claims.AdminID)
			if err != nil || viewer == nil {
				response.Unauthorized(w, "Admin account not found")
				return
			}

			if viewer.Status != StatusActive {
				response.Forbidden(w, "Admin account is not active")
				return
			}

			ctx := context.WithValue(r.Context(), contextViewer, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireFeature guards a route subtree behind a feature grant. super_admin
// passes regardless of its own permission set.
func RequireFeature(f Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer := ViewerFrom(r.Context())
			if !CanToggleFeature(viewer, f) {
				response.Forbidden(w, "Permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ViewerFrom extracts the authenticated admin from context, nil if absent
func ViewerFrom(ctx context.Context) *AdminAccount {
	viewer, ok := ctx.Value(contextViewer).(*AdminAccount)
	if !ok {
		return nil
	}
	return viewer
}
