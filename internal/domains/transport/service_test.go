package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netvista-io/cellular-agent/internal/domains/transport"
	"github.com/netvista-io/cellular-agent/internal/environment"
	"github.com/netvista-io/cellular-agent/internal/errs"
)

const testAPIKey = "test-api-key"

func newTestService(t *testing.T, handler http.HandlerFunc) *transport.Service {
	t.Helper()

	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	return transport.NewService(environment.Environment{
		Agent: environment.Agent{
			Controller: strings.TrimPrefix(server.URL, "https://"),
			APIKey:     testAPIKey,
		},
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	t.Run("decodes body and sends api key", func(t *testing.T) {
		t.Parallel()

		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testAPIKey, r.Header.Get("X-API-Key"))
			assert.Equal(t, "/stat/health", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"subsystem":"wan"}]}`))
		})

		var result struct {
			Data []struct {
				Subsystem string `json:"subsystem"`
			} `json:"data"`
		}
		err := service.Get(context.Background(), "/stat/health", &result)
		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "wan", result.Data[0].Subsystem)
	})

	t.Run("unauthorized maps to auth error", func(t *testing.T) {
		t.Parallel()

		service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		var result any
		err := service.Get(context.Background(), "/stat/device", &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuth)
	})

	t.Run("forbidden maps to auth error", func(t *testing.T) {
		t.Parallel()

		service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		var result any
		err := service.Get(context.Background(), "/stat/device", &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuth)
	})

	t.Run("server error maps to protocol error", func(t *testing.T) {
		t.Parallel()

		service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		var result any
		err := service.Get(context.Background(), "/stat/device", &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrProtocol)
	})

	t.Run("malformed body maps to protocol error", func(t *testing.T) {
		t.Parallel()

		service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>login required</html>"))
		})

		var result map[string]any
		err := service.Get(context.Background(), "/stat/device", &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrProtocol)
	})

	t.Run("refused connection maps to unreachable error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		controller := strings.TrimPrefix(server.URL, "https://")
		server.Close()

		service := transport.NewService(environment.Environment{
			Agent: environment.Agent{
				Controller: controller,
				APIKey:     testAPIKey,
			},
		})

		var result any
		err := service.Get(context.Background(), "/stat/device", &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnreachable)
	})
}
