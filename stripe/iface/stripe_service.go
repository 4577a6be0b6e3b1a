//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/doitintl/hello/nova-checkout/stripe/domain"
)

type StripeService interface {
	CreateCheckoutSession(ctx context.Context, input domain.CheckoutInput) (*domain.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, input domain.PortalInput) (*domain.PortalSession, error)
}

type StripeWebhookService interface {
	HandleEvent(ctx context.Context, body []byte, signature string, apiVersion string) error
}
