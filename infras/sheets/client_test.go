package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"libdash/config"
	"libdash/infras/otel/mocks"
	"libdash/shared/failure"
)

func loginTestClient(loginURL string) Client {
	cfg := &config.Config{}
	cfg.Upstream.LoginURL = loginURL
	cfg.Upstream.TimeoutSeconds = 5

	return New(cfg, mocks.NewOtel())
}

func TestVerifyCredentialsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "librarian", r.URL.Query().Get("username"))
		assert.Equal(t, "secret", r.URL.Query().Get("password"))

		_, _ = w.Write([]byte(`{"success":true,"username":"librarian","role":"admin"}`))
	}))
	defer server.Close()

	credential, err := loginTestClient(server.URL).VerifyCredentials(context.Background(), "librarian", "secret")

	assert.NoError(t, err)
	assert.True(t, credential.OK)
	assert.Equal(t, "librarian", credential.Username)
	assert.Equal(t, "admin", credential.Role)
}

func TestVerifyCredentialsRejectedWithMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Account is locked"}`))
	}))
	defer server.Close()

	credential, err := loginTestClient(server.URL).VerifyCredentials(context.Background(), "librarian", "wrong")

	assert.NoError(t, err)
	assert.False(t, credential.OK)
	assert.Equal(t, "Account is locked", credential.Message)
}

func TestVerifyCredentialsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := loginTestClient(server.URL).VerifyCredentials(context.Background(), "librarian", "secret")

	assert.ErrorIs(t, err, failure.InvalidDataFormat)
}

func TestVerifyCredentialsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := loginTestClient(server.URL).VerifyCredentials(context.Background(), "librarian", "secret")

	assert.ErrorIs(t, err, failure.ConnectionError)
}
