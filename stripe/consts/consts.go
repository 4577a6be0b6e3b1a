package consts

// Request headers and query parameters
const (
	HeaderStripeSignature = "Stripe-Signature"
	QueryAPIVersion       = "api_version"
)

// Checkout session consts
const (
	SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
	SessionIDQuery       = "session_id=" + SessionIDPlaceholder
)

// Session metadata keys
const (
	MetadataCountry = "country"
	MetadataPlan    = "plan"
	MetadataSupport = "support"
	MetadataBilling = "billing"
	MetadataUsers   = "users"
)

// Webhook event types
const (
	EventCheckoutSessionCompleted    = "checkout.session.completed"
	EventInvoicePaymentSucceeded     = "invoice.payment_succeeded"
	EventCustomerSubscriptionUpdated = "customer.subscription.updated"
	EventCustomerSubscriptionDeleted = "customer.subscription.deleted"
)
