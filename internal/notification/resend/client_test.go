package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localdir/internal/notification"
	"localdir/pkg/platform/circuit"
)

func TestClientSend(t *testing.T) {
	msg := notification.Message{
		To:      []string{"owner@example.com"},
		Subject: "Business aprovado / approved: Padaria",
		HTML:    "<p>ok</p>",
		ReplyTo: "suporte@example.com",
	}

	t.Run("posts the message with bearer auth", func(t *testing.T) {
		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"id":"email-123"}`))
		}))
		defer srv.Close()

		c := New("re_test", srv.URL+"/", "Guia <noreply@example.com>")
		out := c.Send(context.Background(), msg)
		require.NoError(t, out.Err)
		assert.Equal(t, "email-123", out.ID)
		assert.Equal(t, "Guia <noreply@example.com>", got.From)
		assert.Equal(t, msg.To, got.To)
		assert.Equal(t, "suporte@example.com", got.ReplyTo)
	})

	t.Run("retries a transient failure", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if hits.Add(1) == 1 {
				http.Error(w, "busy", http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"id":"email-2"}`))
		}))
		defer srv.Close()

		c := New("k", srv.URL, "from@example.com", WithRetry(2, time.Millisecond))
		out := c.Send(context.Background(), msg)
		require.NoError(t, out.Err)
		assert.Equal(t, "email-2", out.ID)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("open breaker fails fast", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer srv.Close()

		breaker := circuit.New("resend", circuit.WithFailureThreshold(1), circuit.WithCooldown(time.Hour))
		c := New("k", srv.URL, "from@example.com", WithRetry(1, time.Millisecond), WithBreaker(breaker))

		first := c.Send(context.Background(), msg)
		require.Error(t, first.Err)
		assert.True(t, breaker.IsOpen())

		second := c.Send(context.Background(), msg)
		assert.ErrorIs(t, second.Err, ErrCircuitOpen)
		assert.Equal(t, int32(1), hits.Load())
	})
}
