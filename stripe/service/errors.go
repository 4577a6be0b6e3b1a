package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/stripe/stripe-go/v74"
)

// Request validation errors
var (
	ErrInvalidCountry   = errors.New("invalid country")
	ErrInvalidPlan      = errors.New("invalid plan")
	ErrInvalidSupport   = errors.New("invalid support level")
	ErrInvalidBilling   = errors.New("invalid billing period")
	ErrInvalidUsers     = errors.New("invalid user count")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// Configuration errors
var (
	ErrSecretNotConfigured        = errors.New("stripe secret key not configured")
	ErrWebhookSecretNotConfigured = errors.New("webhook secret not configured")
	ErrPriceNotFound              = errors.New("price not found")
	ErrPortalDisabled             = errors.New("customer portal disabled")
	ErrSettingsUnavailable        = errors.New("settings unavailable")
)

// Webhook errors
var (
	ErrMissingSignature = errors.New("missing stripe signature header")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrPayloadTooLarge  = errors.New("payload too large")
)

// ErrorKind is the category of a payment provider failure.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindClient
	ErrorKindAuth
	ErrorKindRateLimited
	ErrorKindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindClient:
		return "ClientError"
	case ErrorKindAuth:
		return "AuthError"
	case ErrorKindRateLimited:
		return "RateLimited"
	case ErrorKindUpstream:
		return "UpstreamError"
	default:
		return "Unknown"
	}
}

// HTTPStatus is the response status reported to the caller for the kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindClient:
		return http.StatusBadRequest
	case ErrorKindAuth:
		return http.StatusUnauthorized
	case ErrorKindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Response codes of provider errors
const (
	CodeCardError            = "card_error"
	CodeInvalidRequest       = "invalid_request"
	CodeAuthenticationFailed = "authentication_failed"
	CodeRateLimited          = "rate_limited"
	CodeUpstreamError        = "upstream_error"
	CodeUnexpectedError      = "unexpected_error"
)

// ProviderError is a payment provider failure translated at the service
// boundary. Message is safe to return to the caller.
type ProviderError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Classify translates an error returned by the stripe client into a ProviderError.
func Classify(err error) *ProviderError {
	if err == nil {
		return nil
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return classifyStripeError(stripeErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{
			Kind:    ErrorKindUpstream,
			Code:    CodeUpstreamError,
			Message: "Network error. Please try again later.",
			Err:     err,
		}
	}

	return &ProviderError{
		Kind:    ErrorKindUnknown,
		Code:    CodeUnexpectedError,
		Message: "An unexpected error occurred. Please try again later.",
		Err:     err,
	}
}

func classifyStripeError(err *stripe.Error) *ProviderError {
	switch {
	case err.HTTPStatusCode == http.StatusUnauthorized:
		return &ProviderError{
			Kind:    ErrorKindAuth,
			Code:    CodeAuthenticationFailed,
			Message: "Authentication failed. Please check your API keys.",
			Err:     err,
		}
	case err.HTTPStatusCode == http.StatusTooManyRequests || err.Code == stripe.ErrorCodeRateLimit:
		return &ProviderError{
			Kind:    ErrorKindRateLimited,
			Code:    CodeRateLimited,
			Message: "Rate limit exceeded. Please try again later.",
			Err:     err,
		}
	case err.Type == stripe.ErrorTypeCard:
		return &ProviderError{
			Kind:    ErrorKindClient,
			Code:    CodeCardError,
			Message: fmt.Sprintf("Card error: %s", err.Msg),
			Err:     err,
		}
	case err.Type == stripe.ErrorTypeInvalidRequest || err.Type == stripe.ErrorTypeIdempotency:
		return &ProviderError{
			Kind:    ErrorKindClient,
			Code:    CodeInvalidRequest,
			Message: fmt.Sprintf("Invalid request: %s", err.Msg),
			Err:     err,
		}
	default:
		return &ProviderError{
			Kind:    ErrorKindUpstream,
			Code:    CodeUpstreamError,
			Message: fmt.Sprintf("Stripe API error: %s", err.Msg),
			Err:     err,
		}
	}
}
