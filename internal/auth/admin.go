package auth

import (
	"context"
	"time"
)

// Admin is an administrator account. Accounts are created out-of-band
// (see cmd/admin_tool), never through the HTTP surface.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ctxKey struct{}

// ContextWithAdmin attaches the authenticated admin to the request
// context, so downstream handlers do not re-fetch it.
func ContextWithAdmin(ctx context.Context, admin *Admin) context.Context {
	return context.WithValue(ctx, ctxKey{}, admin)
}

func AdminFromContext(ctx context.Context) (*Admin, bool) {
	admin, ok := ctx.Value(ctxKey{}).(*Admin)
	return admin, ok
}
