package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	client, _ := setupDashboard(t)

	health, err := client.Livez(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "e2e", health.Version)
	require.NotEmpty(t, health.Uptime)
}
