package api

import (
	"net/http"
	"os"

	"github.com/doitintl/hello/nova-checkout/cmd/api/handlers"
	"github.com/doitintl/hello/nova-checkout/framework/mid"
	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/logger"
	pricingService "github.com/doitintl/hello/nova-checkout/pricing/service"
	settingsDal "github.com/doitintl/hello/nova-checkout/settings/dal"
	settingsService "github.com/doitintl/hello/nova-checkout/settings/service"
	stripe "github.com/doitintl/hello/nova-checkout/stripe/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown    chan os.Signal
	log         *logger.Logging
	settingsDAL settingsDal.ISettings
	catalog     *pricingService.Catalog
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, settingsDAL settingsDal.ISettings, catalog *pricingService.Catalog) *API {
	return &API{
		shutdown,
		logging,
		settingsDAL,
		catalog,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	settings := settingsService.NewResolver(loggerProvider, a.settingsDAL)
	stripe := stripe.NewStripe(loggerProvider, settings, a.catalog)

	app.Get("/health", handlers.Health)

	app.Post("/checkout", stripe.CreateCheckoutSession)
	app.Post("/webhook", stripe.WebhookHandler)
	app.Post("/portal", stripe.CreatePortalSession)

	novaGroup := web.NewGroup(app, "/nova/v1")
	{
		novaGroup.Post("/checkout", stripe.CreateCheckoutSession)
		novaGroup.Post("/stripe-webhook", stripe.WebhookHandler)
		novaGroup.Post("/portal", stripe.CreatePortalSession)
	}

	return app
}
