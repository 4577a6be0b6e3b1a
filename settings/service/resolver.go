package service

import (
	"context"
	"os"

	"github.com/doitintl/hello/nova-checkout/logger"
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
	"github.com/doitintl/hello/nova-checkout/settings/dal"
	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

type Resolver struct {
	loggerProvider logger.Provider
	settingsDAL    dal.ISettings
	lookupEnv      LookupEnv
}

func NewResolver(loggerProvider logger.Provider, settingsDAL dal.ISettings) *Resolver {
	return NewResolverWithEnv(loggerProvider, settingsDAL, os.LookupEnv)
}

func NewResolverWithEnv(loggerProvider logger.Provider, settingsDAL dal.ISettings, lookupEnv LookupEnv) *Resolver {
	return &Resolver{
		loggerProvider: loggerProvider,
		settingsDAL:    settingsDAL,
		lookupEnv:      lookupEnv,
	}
}

// Snapshot reads the settings store once and returns the request view.
// Secrets that do not match the configured mode are logged as a warning.
func (r *Resolver) Snapshot(ctx context.Context) (*Snapshot, error) {
	stored, err := r.settingsDAL.Get(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := NewSnapshot(stored, r.lookupEnv)

	l := r.loggerProvider(ctx)
	mode := snapshot.Mode()

	for _, country := range pricingDomain.Countries {
		if key, source := snapshot.SecretKey(country); key != "" && !domain.KeyMatchesMode(mode, key) {
			l.Warningf("%s secret key from %s source does not match %s mode", country, source, mode)
		}
	}

	return snapshot, nil
}

// Stored returns the raw stored settings.
func (r *Resolver) Stored(ctx context.Context) (*domain.Settings, error) {
	return r.settingsDAL.Get(ctx)
}

// Update applies fn to the stored settings and saves the result if it validates.
func (r *Resolver) Update(ctx context.Context, fn func(s *domain.Settings) error) (*domain.Settings, error) {
	s, err := r.settingsDAL.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := fn(s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := r.settingsDAL.Save(ctx, s); err != nil {
		return nil, err
	}

	r.loggerProvider(ctx).Info("settings updated")

	return s, nil
}
