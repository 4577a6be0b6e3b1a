package service

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/doitintl/hello/nova-checkout/logger"
	settingsDomain "github.com/doitintl/hello/nova-checkout/settings/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/validators"
)

// CreatePortalSession opens a billing portal session for the customer of a
// completed checkout session. The portal returns to the country success url.
func (s *StripeService) CreatePortalSession(ctx context.Context, input domain.PortalInput) (*domain.PortalSession, error) {
	l := s.loggerProvider(ctx)

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if !snapshot.PortalEnabled() {
		return nil, ErrPortalDisabled
	}

	country, ok := validators.Country(input.Country)
	if !ok {
		return nil, ErrInvalidCountry
	}

	sessionID, _ := input.SessionID.(string)
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	l.SetLabels(map[string]string{
		logger.LabelCountry:   string(country),
		logger.LabelSessionID: sessionID,
	})

	stripeClient, err := s.clientFor(ctx, snapshot, country)
	if err != nil {
		l.Error(err)
		return nil, err
	}

	checkoutSession, err := stripeClient.GetCheckoutSession(sessionID, nil)
	if err != nil {
		providerErr := Classify(err)
		l.Errorf("failed to get checkout session (%s): %s", providerErr.Kind, err)

		return nil, providerErr
	}

	if checkoutSession.Customer == nil || checkoutSession.Customer.ID == "" {
		return nil, ErrInvalidSessionID
	}

	portalSession, err := stripeClient.NewBillingPortalSession(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(checkoutSession.Customer.ID),
		ReturnURL: stripe.String(snapshot.URL(settingsDomain.URLKindSuccess, country)),
	})
	if err != nil {
		providerErr := Classify(err)
		l.Errorf("failed to create portal session (%s): %s", providerErr.Kind, err)

		return nil, providerErr
	}

	return &domain.PortalSession{
		URL: portalSession.URL,
	}, nil
}
