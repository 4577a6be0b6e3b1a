package service

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

//go:generate mockery --name StripeAPI --output ./mocks
type StripeAPI interface {
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	NewBillingPortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
}

// ClientFactory returns a stripe client authenticated with the given secret key.
type ClientFactory func(secretKey string) StripeAPI

// Client is a stripe client bound to a single account secret key.
type Client struct {
	*client.API
}

func NewStripeClient(secretKey string) StripeAPI {
	var stripeClient client.API

	stripeClient.Init(secretKey, nil)

	return &Client{
		&stripeClient,
	}
}

func (c *Client) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.New(params)
}

func (c *Client) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.Get(id, params)
}

func (c *Client) NewBillingPortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	return c.BillingPortalSessions.New(params)
}
