package dal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

func TestSettingsFile_GetMissing(t *testing.T) {
	d := NewSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))

	s, err := d.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{}, s)
}

func TestSettingsFile_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	d := NewSettingsFile(path)

	want := &domain.Settings{
		Mode:          domain.ModeLive,
		AUSecretKey:   "sk_live_au",
		WebhookSecret: "whsec_123",
		SuccessURLAU:  "https://example.com/success-au/",
		PortalEnabled: true,
	}

	require.NoError(t, d.Save(ctx, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(settingsFileMode), info.Mode().Perm())

	got, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsFile_GetInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unterminated"), 0o600))

	_, err := NewSettingsFile(path).Get(context.Background())
	assert.Error(t, err)
}
