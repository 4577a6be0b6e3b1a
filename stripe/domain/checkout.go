package domain

import (
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
)

// CheckoutInput holds the raw, unvalidated checkout fields as received.
type CheckoutInput struct {
	Country interface{} `json:"country" form:"country"`
	Plan    interface{} `json:"plan" form:"plan"`
	Support interface{} `json:"support" form:"support"`
	Billing interface{} `json:"billing" form:"billing"`
	Users   interface{} `json:"users" form:"users"`
}

// CheckoutRequest is a validated checkout request.
type CheckoutRequest struct {
	Country pricingDomain.Country
	Plan    pricingDomain.Plan
	Support pricingDomain.SupportTier
	Billing pricingDomain.BillingPeriod
	Users   int64
}

type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// PortalInput holds the raw customer portal request fields.
type PortalInput struct {
	Country   interface{} `json:"country" form:"country"`
	SessionID interface{} `json:"session_id" form:"session_id"`
}

type PortalSession struct {
	URL string `json:"url"`
}
