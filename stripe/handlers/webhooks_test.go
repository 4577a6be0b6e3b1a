package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"

	testTools "github.com/doitintl/hello/nova-checkout/common/test_tools"
	"github.com/doitintl/hello/nova-checkout/stripe/service"
)

func TestStripe_WebhookHandler(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"customer.created"}`)

	tests := []struct {
		name       string
		target     string
		headers    map[string]string
		serviceErr error
		apiVersion string
		signature  string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "acknowledged",
			target:     "/webhook",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			signature:  "t=1,v1=abc",
			wantStatus: http.StatusOK,
		},
		{
			name:       "api version is forwarded",
			target:     "/webhook?api_version=2022-11-15",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			signature:  "t=1,v1=abc",
			apiVersion: "2022-11-15",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing signature",
			target:     "/webhook",
			serviceErr: service.ErrMissingSignature,
			wantStatus: http.StatusBadRequest,
			wantCode:   "missing_signature",
		},
		{
			name:       "secret not configured",
			target:     "/webhook",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			signature:  "t=1,v1=abc",
			serviceErr: service.ErrWebhookSecretNotConfigured,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "not_configured",
		},
		{
			name:       "invalid signature",
			target:     "/webhook",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			signature:  "t=1,v1=abc",
			serviceErr: fmt.Errorf("%w: no valid signature", service.ErrInvalidSignature),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_signature",
		},
		{
			name:       "invalid payload",
			target:     "/webhook",
			headers:    map[string]string{"Stripe-Signature": "t=1,v1=abc"},
			signature:  "t=1,v1=abc",
			serviceErr: fmt.Errorf("%w: bad json", service.ErrInvalidPayload),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, w := newTestStripe(t)
			w.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, tt.signature, tt.apiVersion).Return(tt.serviceErr).Once()

			ctx, recorder := testTools.GenerateCtx(t, http.MethodPost, tt.target, body, tt.headers)

			err := h.WebhookHandler(ctx)
			if tt.wantCode != "" {
				assertWebError(t, err, tt.wantStatus, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, `{"received":true}`, recorder.Body.String())
		})
	}
}

func TestStripe_WebhookHandler_BodyLimit(t *testing.T) {
	t.Run("body at the limit is passed on whole", func(t *testing.T) {
		h, _, w := newTestStripe(t)
		body := bytes.Repeat([]byte("a"), maxWebhookBodyBytes)
		w.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, "t=1,v1=abc", "").Return(nil).Once()

		ctx, recorder := testTools.GenerateCtx(t, http.MethodPost, "/webhook", body, map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		require.NoError(t, h.WebhookHandler(ctx))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("oversized body is rejected before verification", func(t *testing.T) {
		h, _, _ := newTestStripe(t)
		body := bytes.Repeat([]byte("a"), maxWebhookBodyBytes+100)

		ctx, _ := testTools.GenerateCtx(t, http.MethodPost, "/webhook", body, map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		err := h.WebhookHandler(ctx)
		assertWebError(t, err, http.StatusRequestEntityTooLarge, "payload_too_large")
		assert.ErrorIs(t, err, service.ErrPayloadTooLarge)
	})
}

func TestRequestError_HidesVerificationDetail(t *testing.T) {
	err := requestError(fmt.Errorf("%w: webhook has no valid signature", service.ErrInvalidSignature))
	assert.EqualError(t, err, "Invalid signature")
	assert.ErrorIs(t, err, service.ErrInvalidSignature)

	err = requestError(fmt.Errorf("%w for NZ", service.ErrSecretNotConfigured))
	assert.EqualError(t, err, "Stripe secret key not configured for NZ")

	err = requestError(service.ErrInvalidCountry)
	assertWebError(t, err, http.StatusBadRequest, "invalid_country")
	assert.EqualError(t, err, "Invalid country. Must be AU or NZ.")

	providerErr := service.Classify(&stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})
	err = requestError(providerErr)
	assertWebError(t, err, http.StatusBadRequest, "card_error")
	assert.EqualError(t, err, "Card error: Your card was declined.")
	assert.ErrorIs(t, err, providerErr)

	unknown := errors.New("boom")
	assert.Same(t, unknown, requestError(unknown))
}
