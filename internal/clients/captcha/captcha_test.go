package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

func newTestClient(verifyURL, secret string) *Client {
	return NewClient(&config.CaptchaConfig{
		VerifyURL: verifyURL,
		Secret:    secret,
		Timeout:   2 * time.Second,
	})
}

func TestVerifySuccess(t *testing.T) {
	var gotToken, gotSecret, gotRemoteIP string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotToken = r.PostFormValue("response")
		gotSecret = r.PostFormValue("secret")
		gotRemoteIP = r.PostFormValue("remoteip")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-secret")
	ok := client.Verify(context.Background(), "the-token", "1.2.3.4")

	assert.True(t, ok)
	assert.Equal(t, "the-token", gotToken)
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "1.2.3.4", gotRemoteIP)
}

func TestVerifyUpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-secret")
	assert.False(t, client.Verify(context.Background(), "bad-token", ""))
}

func TestVerifyFailsClosed(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:0", "test-secret")
		assert.False(t, client.Verify(context.Background(), "", "1.2.3.4"))
	})

	t.Run("missing secret", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:0", "")
		assert.False(t, client.Verify(context.Background(), "the-token", "1.2.3.4"))
	})

	t.Run("network failure", func(t *testing.T) {
		// Closed server: connection refused.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		client := newTestClient(server.URL, "test-secret")
		assert.False(t, client.Verify(context.Background(), "the-token", "1.2.3.4"))
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()
		client := newTestClient(server.URL, "test-secret")
		assert.False(t, client.Verify(context.Background(), "the-token", "1.2.3.4"))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not-json"))
		}))
		defer server.Close()
		client := newTestClient(server.URL, "test-secret")
		assert.False(t, client.Verify(context.Background(), "the-token", "1.2.3.4"))
	})
}

func TestVerifySkipVerification(t *testing.T) {
	client := NewClient(&config.CaptchaConfig{SkipVerification: true})
	assert.True(t, client.Verify(context.Background(), "", ""))
}
