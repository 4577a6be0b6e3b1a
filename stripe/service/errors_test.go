package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v74"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    ErrorKind
		wantCode    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "card error",
			err:         &stripe.Error{Type: stripe.ErrorTypeCard, HTTPStatusCode: http.StatusPaymentRequired, Msg: "Your card was declined."},
			wantKind:    ErrorKindClient,
			wantCode:    CodeCardError,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Card error: Your card was declined.",
		},
		{
			name:        "invalid request",
			err:         &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusBadRequest, Msg: "No such price"},
			wantKind:    ErrorKindClient,
			wantCode:    CodeInvalidRequest,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request: No such price",
		},
		{
			name:        "authentication",
			err:         &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnauthorized, Msg: "Invalid API Key provided"},
			wantKind:    ErrorKindAuth,
			wantCode:    CodeAuthenticationFailed,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed. Please check your API keys.",
		},
		{
			name:        "rate limit by code",
			err:         &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Code: stripe.ErrorCodeRateLimit},
			wantKind:    ErrorKindRateLimited,
			wantCode:    CodeRateLimited,
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "Rate limit exceeded. Please try again later.",
		},
		{
			name:        "api error",
			err:         &stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: http.StatusInternalServerError, Msg: "oops"},
			wantKind:    ErrorKindUpstream,
			wantCode:    CodeUpstreamError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Stripe API error: oops",
		},
		{
			name:        "network error",
			err:         fmt.Errorf("request failed: %w", &net.OpError{Op: "dial", Err: errors.New("connection refused")}),
			wantKind:    ErrorKindUpstream,
			wantCode:    CodeUpstreamError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Network error. Please try again later.",
		},
		{
			name:        "deadline",
			err:         context.DeadlineExceeded,
			wantKind:    ErrorKindUpstream,
			wantCode:    CodeUpstreamError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Network error. Please try again later.",
		},
		{
			name:        "anything else",
			err:         errors.New("boom"),
			wantKind:    ErrorKindUnknown,
			wantCode:    CodeUnexpectedError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.Kind.HTTPStatus())
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantCode+": "+tt.err.Error(), got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	assert.Nil(t, Classify(nil))

	first := Classify(errors.New("boom"))
	assert.Same(t, first, Classify(fmt.Errorf("wrapped: %w", first)))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "ClientError", ErrorKindClient.String())
	assert.Equal(t, "AuthError", ErrorKindAuth.String())
	assert.Equal(t, "RateLimited", ErrorKindRateLimited.String())
	assert.Equal(t, "UpstreamError", ErrorKindUpstream.String())
	assert.Equal(t, "Unknown", ErrorKindUnknown.String())
}

func TestSentinelErrors_Lowercase(t *testing.T) {
	sentinels := []error{
		ErrInvalidCountry, ErrInvalidPlan, ErrInvalidSupport, ErrInvalidBilling, ErrInvalidUsers, ErrInvalidSessionID,
		ErrSecretNotConfigured, ErrWebhookSecretNotConfigured, ErrPriceNotFound, ErrPortalDisabled, ErrSettingsUnavailable,
		ErrMissingSignature, ErrInvalidSignature, ErrInvalidPayload, ErrPayloadTooLarge,
	}

	for _, err := range sentinels {
		msg := err.Error()
		assert.Equal(t, strings.ToLower(msg[:1]), msg[:1], msg)
		assert.False(t, strings.HasSuffix(msg, "."), msg)
	}
}
