package handlers

import (
	"github.com/doitintl/hello/nova-checkout/logger"
	pricingService "github.com/doitintl/hello/nova-checkout/pricing/service"
	"github.com/doitintl/hello/nova-checkout/stripe/iface"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

type Stripe struct {
	loggerProvider logger.Provider
	service        iface.StripeService
	webhookService iface.StripeWebhookService
}

// NewStripe creates new stripe package handlers
func NewStripe(loggerProvider logger.Provider, settings service.SettingsProvider, catalog *pricingService.Catalog) *Stripe {
	return &Stripe{
		loggerProvider,
		service.NewStripeService(loggerProvider, settings, catalog),
		service.NewStripeWebhookService(loggerProvider, settings),
	}
}
