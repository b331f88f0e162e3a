package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/pkg/jwthelper"
)

const (
	ContextKeyRole    = "role"
	ContextKeySubject = "subject"
)

var errMissingBearer = errors.New("missing bearer token")

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the caller's role in the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearer))
			return
		}

		claims, err := jwthelper.Parse(strings.TrimSpace(token), a.signingKey)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(ContextKeyRole, domain.Role(claims.Role))
		ctx.Set(ContextKeySubject, claims.Subject)
		ctx.Next()
	}
}

// RoleFrom returns the role VerifyJWT stored, or the empty role.
func RoleFrom(ctx *gin.Context) domain.Role {
	role, _ := ctx.Get(ContextKeyRole)
	r, _ := role.(domain.Role)

	return r
}
