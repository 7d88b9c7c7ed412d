package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
)

const testKid = "test-key"

func jwksServer(t *testing.T, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: testKid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T, v *JWTValidator) http.Handler {
	t.Helper()
	return Middleware(v, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := SubjectFromContext(r.Context())
		_, _ = w.Write([]byte(sub))
	}))
}

func TestMiddleware(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := jwksServer(t, &key.PublicKey)
	v := NewJWTValidator(config.AuthConfig{Enabled: true, JWKSURL: srv.URL, Issuer: "https://issuer.example"})
	handler := protectedHandler(t, v)

	valid := jwt.MapClaims{
		"sub": "ops-dashboard",
		"iss": "https://issuer.example",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantCode: http.StatusUnauthorized},
		{
			name:     "valid token",
			header:   "Bearer " + signToken(t, key, valid),
			wantCode: http.StatusOK,
			wantBody: "ops-dashboard",
		},
		{
			name: "wrong issuer",
			header: "Bearer " + signToken(t, key, jwt.MapClaims{
				"sub": "x", "iss": "https://other.example", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + signToken(t, key, jwt.MapClaims{
				"sub": "x", "iss": "https://issuer.example", "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "no expiry",
			header: "Bearer " + signToken(t, key, jwt.MapClaims{
				"sub": "x", "iss": "https://issuer.example",
			}),
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestJWTValidator_UnknownKid(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := jwksServer(t, &key.PublicKey)
	v := NewJWTValidator(config.AuthConfig{JWKSURL: srv.URL})

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	token.Header["kid"] = "rotated-away"
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	_, err = v.ValidateToken(t.Context(), signed)
	assert.Error(t, err)
	assert.True(t, v.IsConfigured())
}
