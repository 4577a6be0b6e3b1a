package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/doitintl/hello/nova-checkout/framework/web"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

type requestErrorMapping struct {
	err     error
	status  int
	code    string
	message string
	// detailed responses keep the context wrapped around the sentinel
	detailed bool
}

var requestErrorMappings = []requestErrorMapping{
	{service.ErrInvalidCountry, http.StatusBadRequest, "invalid_country", "Invalid country. Must be AU or NZ.", false},
	{service.ErrInvalidPlan, http.StatusBadRequest, "invalid_plan", "Invalid plan. Must be plus, pro, or ultimate.", false},
	{service.ErrInvalidSupport, http.StatusBadRequest, "invalid_support", "Invalid support level. Must be basic, plus, or ultimate.", false},
	{service.ErrInvalidBilling, http.StatusBadRequest, "invalid_billing", "Invalid billing period. Must be quarterly or annual.", false},
	{service.ErrInvalidUsers, http.StatusBadRequest, "invalid_users", "Invalid user count. Must be 1 or greater.", false},
	{service.ErrInvalidSessionID, http.StatusBadRequest, "invalid_session_id", "Invalid session id.", false},
	{service.ErrSecretNotConfigured, http.StatusInternalServerError, "not_configured", "Stripe secret key not configured", true},
	{service.ErrWebhookSecretNotConfigured, http.StatusInternalServerError, "not_configured", "Webhook secret not configured", false},
	{service.ErrPriceNotFound, http.StatusInternalServerError, "price_not_found", "Price configuration not found for the selected options.", false},
	{service.ErrSettingsUnavailable, http.StatusInternalServerError, "settings_unavailable", "Settings are unavailable. Please try again later.", false},
	{service.ErrPortalDisabled, http.StatusNotFound, "portal_disabled", "Customer portal is not enabled.", false},
	{service.ErrMissingSignature, http.StatusBadRequest, "missing_signature", "Missing Stripe signature header", false},
	{service.ErrInvalidSignature, http.StatusBadRequest, "invalid_signature", "Invalid signature", false},
	{service.ErrInvalidPayload, http.StatusBadRequest, "invalid_payload", "Invalid payload", false},
	{service.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "payload_too_large", "Payload too large", false},
}

// displayError carries the message shown to the caller while keeping the
// underlying error for logs and errors.Is.
type displayError struct {
	message string
	err     error
}

func (e *displayError) Error() string {
	return e.message
}

func (e *displayError) Unwrap() error {
	return e.err
}

// requestError converts a service error into a web error with a stable code.
// Unrecognised errors are returned as is and rendered as a generic 500.
func requestError(err error) error {
	var providerErr *service.ProviderError
	if errors.As(err, &providerErr) {
		return web.NewCodedRequestError(&displayError{providerErr.Message, err}, providerErr.Kind.HTTPStatus(), providerErr.Code)
	}

	for _, m := range requestErrorMappings {
		if !errors.Is(err, m.err) {
			continue
		}

		message := m.message
		if m.detailed {
			message = strings.Replace(err.Error(), m.err.Error(), m.message, 1)
		}

		return web.NewCodedRequestError(&displayError{message, err}, m.status, m.code)
	}

	return err
}
