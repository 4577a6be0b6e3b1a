package service

import (
	"context"
	"fmt"

	"github.com/doitintl/hello/nova-checkout/logger"
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
	pricingService "github.com/doitintl/hello/nova-checkout/pricing/service"
	settingsService "github.com/doitintl/hello/nova-checkout/settings/service"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
)

type SettingsProvider interface {
	Snapshot(ctx context.Context) (*settingsService.Snapshot, error)
}

// StripeService creates checkout and customer portal sessions on the
// stripe account of the requested country.
type StripeService struct {
	loggerProvider logger.Provider
	settings       SettingsProvider
	catalog        *pricingService.Catalog
	newClient      ClientFactory
}

func NewStripeService(loggerProvider logger.Provider, settings SettingsProvider, catalog *pricingService.Catalog) *StripeService {
	return NewStripeServiceWithClientFactory(loggerProvider, settings, catalog, NewStripeClient)
}

func NewStripeServiceWithClientFactory(
	loggerProvider logger.Provider,
	settings SettingsProvider,
	catalog *pricingService.Catalog,
	newClient ClientFactory,
) *StripeService {
	return &StripeService{
		loggerProvider,
		settings,
		catalog,
		newClient,
	}
}

func (s *StripeService) snapshot(ctx context.Context) (*settingsService.Snapshot, error) {
	snapshot, err := s.settings.Snapshot(ctx)
	if err != nil {
		s.loggerProvider(ctx).Errorf("failed to read settings: %s", err)
		return nil, ErrSettingsUnavailable
	}

	return snapshot, nil
}

// clientFor returns a stripe client for the country account. Missing keys
// are reported before any stripe call is attempted.
func (s *StripeService) clientFor(ctx context.Context, snapshot *settingsService.Snapshot, country pricingDomain.Country) (StripeAPI, error) {
	l := s.loggerProvider(ctx)

	if account, ok := domain.StripeAccountNames[country]; ok {
		l.SetLabel(logger.LabelAccount, account)
	}

	secretKey, source := snapshot.SecretKey(country)
	if secretKey == "" {
		return nil, fmt.Errorf("%w for %s", ErrSecretNotConfigured, country)
	}

	l.Debugf("using %s secret key from %s source", country, source)

	return s.newClient(secretKey), nil
}
