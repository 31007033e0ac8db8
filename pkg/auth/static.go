package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
)

var _ Provider = (*Static)(nil)

// Static accepts a single shared bearer token.
type Static struct {
	token string
}

func NewStatic(token string) *Static {
	return &Static{
		token: token,
	}
}

func (p *Static) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	if p.token == "" {
		return ctx, nil
	}

	token, err := bearerToken(r)

	if err != nil {
		return ctx, err
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(p.token)) != 1 {
		return ctx, errors.Join(ErrUnauthorized, errors.New("invalid token"))
	}

	ctx = context.WithValue(ctx, UserContextKey, "static")

	return ctx, nil
}
