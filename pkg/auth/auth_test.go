package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	p := NewStatic("s3cret")

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{name: "valid", header: "Bearer s3cret", ok: true},
		{name: "lowercase scheme", header: "bearer s3cret", ok: true},
		{name: "missing", header: ""},
		{name: "basic", header: "Basic s3cret"},
		{name: "wrong token", header: "Bearer nope"},
		{name: "wrong case", header: "Bearer S3CRET"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			ctx, err := p.Authenticate(context.Background(), r)

			if !tt.ok {
				require.ErrorIs(t, err, ErrUnauthorized)
				require.Empty(t, User(ctx))
				return
			}

			require.NoError(t, err)
			require.Equal(t, "static", User(ctx))
		})
	}
}

func TestStaticWithoutToken(t *testing.T) {
	p := NewStatic("")

	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)
}

func TestOIDCDiscoveryFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewOIDC(context.Background(), server.URL, "podcast")
	require.Error(t, err)
}
