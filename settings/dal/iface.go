package dal

import (
	"context"

	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

//go:generate mockery --name ISettings --output ./mocks
type ISettings interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

var (
	_ ISettings = (*SettingsFirestore)(nil)
	_ ISettings = (*SettingsFile)(nil)
)
