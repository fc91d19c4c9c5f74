package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"qrorder/internal/domain"
	"qrorder/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorClient_Translate(t *testing.T) {
	ctx := context.Background()

	t.Run("posts_request_and_returns_translated_text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/translate", r.URL.Path)

			var req struct {
				Text       string `json:"text"`
				SourceLang string `json:"source_lang"`
				TargetLang string `json:"target_lang"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "아메리카노", req.Text)
			assert.Equal(t, "ko", req.SourceLang)
			assert.Equal(t, "en", req.TargetLang)

			json.NewEncoder(w).Encode(map[string]string{
				"original":   req.Text,
				"translated": "Americano",
			})
		}))
		defer server.Close()

		client := provider.NewTranslatorClient(server.URL, 5*time.Second)
		translated, err := client.Translate(ctx, "아메리카노", "ko", "en")

		require.NoError(t, err)
		assert.Equal(t, "Americano", translated)
	})

	t.Run("unsupported_language_rejected_without_network_call", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		client := provider.NewTranslatorClient(server.URL, 5*time.Second)
		_, err := client.Translate(ctx, "아메리카노", "ko", "de")

		assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("upstream_error_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "translator overloaded", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := provider.NewTranslatorClient(server.URL, 5*time.Second)
		_, err := client.Translate(ctx, "아메리카노", "ko", "en")

		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
		assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
	})

	t.Run("unreachable_provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := provider.NewTranslatorClient(server.URL, time.Second)
		_, err := client.Translate(ctx, "아메리카노", "ko", "en")

		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
		assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
	})
}
