package environment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netvista-io/cellular-agent/internal/environment"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("AGENT_CONTROLLER", "192.168.1.1")
	t.Setenv("AGENT_API_KEY", "test-api-key")

	env, err := environment.New()
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.1", env.Controller)
	assert.Equal(t, "test-api-key", env.APIKey)
	assert.Equal(t, "default", env.Site)
	assert.False(t, env.VerifySSL)
	assert.Equal(t, time.Second*30, env.PollInterval)
	assert.Equal(t, 3, env.FailureThreshold)
	assert.Equal(t, "info", env.LogLevel)
	assert.False(t, env.IsDebug())
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("AGENT_CONTROLLER", "unifi.example.net:8443")
	t.Setenv("AGENT_API_KEY", "test-api-key")
	t.Setenv("AGENT_SITE", "branch-office")
	t.Setenv("AGENT_VERIFY_SSL", "true")
	t.Setenv("AGENT_POLL_INTERVAL", "45s")
	t.Setenv("AGENT_FAILURE_THRESHOLD", "5")
	t.Setenv("AGENT_LOG_LEVEL", "debug")

	env, err := environment.New()
	require.NoError(t, err)

	assert.Equal(t, "unifi.example.net:8443", env.Controller)
	assert.Equal(t, "branch-office", env.Site)
	assert.True(t, env.VerifySSL)
	assert.Equal(t, time.Second*45, env.PollInterval)
	assert.Equal(t, 5, env.FailureThreshold)
	assert.True(t, env.IsDebug())
}

func TestNew_MissingRequired(t *testing.T) {
	t.Setenv("AGENT_CONTROLLER", "")
	t.Setenv("AGENT_API_KEY", "")

	_, err := environment.New()
	require.Error(t, err)
}
