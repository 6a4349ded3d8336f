package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soulclaim/config"
	"soulclaim/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.SessionGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Middleware.BaseURL = server.URL
	cfg.Middleware.Origin = "https://app.example.com"
	cfg.Middleware.Referer = "https://app.example.com/"
	cfg.Middleware.UserAgent = "Mozilla/5.0 (test)"
	cfg.Middleware.AcceptLanguage = "en-US,en;q=0.9"
	cfg.Middleware.RequestTimeout = 5 * time.Second

	return NewSessionClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionClient_GetChallenge(t *testing.T) {
	var gotHeaders http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/session/get-challenge", r.URL.Path)

		w.Header().Add("Set-Cookie", "session=abc; Path=/")
		w.Header().Add("Set-Cookie", "csrf=xyz; Path=/")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"challenge": "0xdeadbeef",
			"expires":   "2026-09-01T00:00:00Z",
		})
	}))

	challenge, err := client.GetChallenge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", challenge.Challenge)
	assert.Equal(t, "2026-09-01T00:00:00Z", challenge.Expires)
	assert.Equal(t, "session=abc; Path=/; csrf=xyz; Path=/", challenge.Cookie)

	// The middleware rejects requests without browser-looking headers.
	assert.Equal(t, "Mozilla/5.0 (test)", gotHeaders.Get("User-Agent"))
	assert.Equal(t, "https://app.example.com", gotHeaders.Get("Origin"))
	assert.Equal(t, "en-US,en;q=0.9", gotHeaders.Get("Accept-Language"))
	assert.Equal(t, "cors", gotHeaders.Get("Sec-Fetch-Mode"))
}

func TestSessionClient_CheckSignature(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/session/check-signature", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0x1111", body["address"])
		assert.Equal(t, "0xsig", body["signature"])
	}))

	require.NoError(t, client.CheckSignature(context.Background(), "0x1111", "0xsig", "session=abc"))
}

func TestSessionClient_CheckSession_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.CheckSession(context.Background(), "session=stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSessionClient_StoreMetadata(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/store", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "corn.soul", body["soulName"])

		_, _ = w.Write([]byte(`{"metadataTransaction":{"id":"arweave-tx-id"}}`))
	}))

	ref, err := client.StoreMetadata(context.Background(), "session=abc", "corn.soul")
	require.NoError(t, err)
	assert.Equal(t, "arweave-tx-id", ref)
}

func TestSessionClient_StoreMetadata_MissingID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metadataTransaction":{}}`))
	}))

	_, err := client.StoreMetadata(context.Background(), "session=abc", "corn.soul")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata transaction id missing")
}

func TestSessionClient_GenerateCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2fa/generate", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+15550001111", body["phoneNumber"])

		_, _ = w.Write([]byte(`{"success":false,"message":"quota exceeded"}`))
	}))

	ticket, err := client.GenerateCode(context.Background(), "session=abc", "+15550001111")
	require.NoError(t, err)
	assert.False(t, ticket.Success)
	assert.Equal(t, "quota exceeded", ticket.Message)
}

func TestSessionClient_MintWithCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2fa/mint", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"address":     "0x1111",
			"phoneNumber": "+15550001111",
			"code":        "123456",
			"signature":   "0xsig",
		}, body)
	}))

	err := client.MintWithCode(context.Background(), "session=abc", service.MintRequest{
		Address:     "0x1111",
		PhoneNumber: "+15550001111",
		Code:        "123456",
		Signature:   "0xsig",
	})
	require.NoError(t, err)
}
