package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
)

var _ Provider = (*OIDC)(nil)

// OIDC verifies bearer ID tokens issued for audience by issuer.
type OIDC struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDC(ctx context.Context, issuer, audience string) (*OIDC, error) {
	provider, err := oidc.NewProvider(ctx, issuer)

	if err != nil {
		return nil, err
	}

	return &OIDC{
		verifier: provider.Verifier(&oidc.Config{
			ClientID: audience,
		}),
	}, nil
}

func (p *OIDC) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	token, err := bearerToken(r)

	if err != nil {
		return ctx, err
	}

	idtoken, err := p.verifier.Verify(ctx, token)

	if err != nil {
		return ctx, errors.Join(ErrUnauthorized, err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
	}

	if err := idtoken.Claims(&claims); err == nil {
		if claims.Subject != "" {
			ctx = context.WithValue(ctx, UserContextKey, claims.Subject)
		}

		if claims.Email != "" {
			ctx = context.WithValue(ctx, EmailContextKey, claims.Email)
		}
	}

	return ctx, nil
}
