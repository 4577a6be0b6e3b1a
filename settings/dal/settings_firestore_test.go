package dal

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

type fakeDocument struct {
	settings domain.Settings
	err      error
}

func (d fakeDocument) DataTo(p interface{}) error {
	if d.err != nil {
		return d.err
	}

	*p.(*domain.Settings) = d.settings

	return nil
}

func TestSettingsFromDocument(t *testing.T) {
	errDecode := errors.New("cannot decode")
	stored := domain.Settings{
		Mode:          domain.ModeLive,
		AUSecretKey:   "sk_live_au",
		PortalEnabled: true,
	}

	tests := []struct {
		name    string
		doc     documentData
		err     error
		want    *domain.Settings
		wantErr bool
	}{
		{
			name: "missing document yields empty settings",
			err:  status.Error(codes.NotFound, "no such document"),
			want: &domain.Settings{},
		},
		{
			name:    "other read errors are returned",
			err:     status.Error(codes.Unavailable, "unavailable"),
			wantErr: true,
		},
		{
			name: "stored document is decoded",
			doc:  fakeDocument{settings: stored},
			want: &stored,
		},
		{
			name:    "decode failure",
			doc:     fakeDocument{err: errDecode},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settingsFromDocument(tt.doc, tt.err)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsFirestore_Emulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	ctx := context.Background()

	fs, err := firestore.NewClient(ctx, "nova-checkout-test")
	require.NoError(t, err)

	defer fs.Close()

	d := NewSettingsFirestoreWithClient(func(ctx context.Context) *firestore.Client {
		return fs
	})

	ref := fs.Collection(appCollection).Doc(settingsDocID)

	_, err = ref.Delete(ctx)
	require.NoError(t, err)

	got, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{}, got)

	_, err = ref.Set(ctx, map[string]interface{}{
		"mode":           "live",
		"au_sk":          "sk_live_au",
		"success_url_au": "https://example.com/thanks-au/",
		"portal_enabled": true,
	})
	require.NoError(t, err)

	got, err = d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{
		Mode:          domain.ModeLive,
		AUSecretKey:   "sk_live_au",
		SuccessURLAU:  "https://example.com/thanks-au/",
		PortalEnabled: true,
	}, got)

	got.NZSecretKey = "sk_live_nz"
	require.NoError(t, d.Save(ctx, got))

	saved, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk_live_nz", saved.NZSecretKey)
	assert.Equal(t, "sk_live_au", saved.AUSecretKey)
}
