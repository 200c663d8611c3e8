package httpx

import (
	"context"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyUserName ctxKey = "user_name"
	ctxKeyScopes   ctxKey = "scopes"
	ctxKeyClaims   ctxKey = "claims"
)

// WithClaims stores the verified token claims on ctx.
func WithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserName, c.Subject)
	ctx = context.WithValue(ctx, ctxKeyScopes, c.Scopes)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// UserName is the authenticated subject, empty for anonymous requests.
func UserName(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUserName).(string)
	return v
}

func Claims(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}

func scopesFromCtx(ctx context.Context) []string {
	v, _ := ctx.Value(ctxKeyScopes).([]string)
	return v
}
