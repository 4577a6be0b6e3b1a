package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/doitintl/hello/nova-checkout/logger"
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
	pricingService "github.com/doitintl/hello/nova-checkout/pricing/service"
	settingsDomain "github.com/doitintl/hello/nova-checkout/settings/domain"
	"github.com/doitintl/hello/nova-checkout/stripe/consts"
	"github.com/doitintl/hello/nova-checkout/stripe/domain"
	"github.com/doitintl/hello/nova-checkout/validators"
)

// ValidateCheckoutInput normalizes the raw checkout fields. The first
// invalid field is reported.
func ValidateCheckoutInput(input domain.CheckoutInput) (domain.CheckoutRequest, error) {
	var req domain.CheckoutRequest

	var ok bool

	if req.Country, ok = validators.Country(input.Country); !ok {
		return req, ErrInvalidCountry
	}

	if req.Plan, ok = validators.Plan(input.Plan); !ok {
		return req, ErrInvalidPlan
	}

	if req.Support, ok = validators.Support(input.Support); !ok {
		return req, ErrInvalidSupport
	}

	if req.Billing, ok = validators.Billing(input.Billing); !ok {
		return req, ErrInvalidBilling
	}

	if req.Users, ok = validators.Users(input.Users); !ok {
		return req, ErrInvalidUsers
	}

	return req, nil
}

// CreateCheckoutSession creates a subscription checkout session for the
// requested plan and support tier, both billed per user.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, input domain.CheckoutInput) (*domain.CheckoutSession, error) {
	l := s.loggerProvider(ctx)

	req, err := ValidateCheckoutInput(input)
	if err != nil {
		return nil, err
	}

	l.SetLabels(map[string]string{
		logger.LabelCountry: string(req.Country),
		logger.LabelPlan:    string(req.Plan),
		logger.LabelSupport: string(req.Support),
		logger.LabelBilling: string(req.Billing),
	})

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stripeClient, err := s.clientFor(ctx, snapshot, req.Country)
	if err != nil {
		l.Error(err)
		return nil, err
	}

	prices, err := s.catalog.Resolve(req.Country, req.Plan, req.Support, req.Billing)
	if err != nil {
		if errors.Is(err, pricingService.ErrPriceNotFound) {
			l.Errorf("no prices for %s/%s/%s/%s", req.Country, req.Plan, req.Support, req.Billing)
			return nil, ErrPriceNotFound
		}

		return nil, err
	}

	params := newCheckoutSessionParams(
		req,
		prices,
		snapshot.URL(settingsDomain.URLKindSuccess, req.Country),
		snapshot.URL(settingsDomain.URLKindCancel, req.Country),
	)

	session, err := stripeClient.NewCheckoutSession(params)
	if err != nil {
		providerErr := Classify(err)
		l.Errorf("failed to create checkout session (%s): %s", providerErr.Kind, err)

		return nil, providerErr
	}

	l.SetLabel(logger.LabelSessionID, session.ID)
	l.Infof("checkout session created for %d users", req.Users)

	return &domain.CheckoutSession{
		URL:       session.URL,
		SessionID: session.ID,
	}, nil
}

func newCheckoutSessionParams(req domain.CheckoutRequest, prices pricingDomain.PriceIDs, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: []*string{stripe.String(string(stripe.PaymentMethodTypeCard))},
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(prices.Plan),
				Quantity: stripe.Int64(req.Users),
			},
			{
				Price:    stripe.String(prices.Support),
				Quantity: stripe.Int64(req.Users),
			},
		},
		SuccessURL: stripe.String(withSessionIDQuery(successURL)),
		CancelURL:  stripe.String(cancelURL),
	}

	params.AddMetadata(consts.MetadataCountry, string(req.Country))
	params.AddMetadata(consts.MetadataPlan, string(req.Plan))
	params.AddMetadata(consts.MetadataSupport, string(req.Support))
	params.AddMetadata(consts.MetadataBilling, string(req.Billing))
	params.AddMetadata(consts.MetadataUsers, strconv.FormatInt(req.Users, 10))

	return params
}

// withSessionIDQuery appends the session id template to the success url,
// keeping any existing query and fragment. The template must stay unescaped.
func withSessionIDQuery(successURL string) string {
	base, fragment, hasFragment := strings.Cut(successURL, "#")

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}

	u := base + sep + consts.SessionIDQuery
	if hasFragment {
		u += "#" + fragment
	}

	return u
}
