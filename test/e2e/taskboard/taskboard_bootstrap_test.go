package taskboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrap verifies the first admin can be created exactly once.
func TestBootstrap(t *testing.T) {
	client := setupContainer(t)
	ctx := context.Background()

	req := tasksdk.BootstrapRequest{
		AdminName:     adminName,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}

	_, err := client.Bootstrap(ctx, "wrong-token", req)
	assertStatus(t, err, http.StatusUnauthorized, "Bootstrap with a wrong token")

	_, err = client.Bootstrap(ctx, bootstrapToken, tasksdk.BootstrapRequest{AdminName: adminName})
	assertStatus(t, err, http.StatusBadRequest, "Bootstrap with missing fields")

	admin := bootstrapAdmin(t, client)

	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminEmail, me.Email)
	require.Equal(t, "admin", me.Role)

	_, err = client.Bootstrap(ctx, bootstrapToken, req)
	assertStatus(t, err, http.StatusUnauthorized, "Second bootstrap")
}
