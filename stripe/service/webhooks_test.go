package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	testTools "github.com/doitintl/hello/nova-checkout/common/test_tools"
	"github.com/doitintl/hello/nova-checkout/logger"
	loggerMocks "github.com/doitintl/hello/nova-checkout/logger/mocks"
	settingsDomain "github.com/doitintl/hello/nova-checkout/settings/domain"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func readEvent(t *testing.T, name string) []byte {
	payload, err := testTools.ReadJSONFile("testdata", name)
	require.NoError(t, err)

	return payload
}

func webhookSettings() staticSettings {
	return staticSettings{stored: &settingsDomain.Settings{WebhookSecret: testWebhookSecret}}
}

func TestStripeWebhookService_HandleEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	completed := readEvent(t, "checkout_session_completed")

	tests := []struct {
		name       string
		settings   SettingsProvider
		body       []byte
		signature  string
		apiVersion string
		wantErr    error
	}{
		{
			name:      "verified event",
			settings:  webhookSettings(),
			body:      completed,
			signature: signPayload(completed, testWebhookSecret, now),
		},
		{
			name:      "env webhook secret takes precedence",
			settings:  staticSettings{stored: &settingsDomain.Settings{WebhookSecret: "whsec_stored"}, env: map[string]string{"STRIPE_WEBHOOK_SECRET": testWebhookSecret}},
			body:      completed,
			signature: signPayload(completed, testWebhookSecret, now),
		},
		{
			name:      "missing signature is rejected before reading settings",
			settings:  staticSettings{err: errUnavailable},
			body:      completed,
			signature: "",
			wantErr:   ErrMissingSignature,
		},
		{
			name:      "missing webhook secret",
			settings:  staticSettings{stored: &settingsDomain.Settings{}},
			body:      completed,
			signature: signPayload(completed, testWebhookSecret, now),
			wantErr:   ErrWebhookSecretNotConfigured,
		},
		{
			name:      "wrong secret",
			settings:  webhookSettings(),
			body:      completed,
			signature: signPayload(completed, "whsec_other", now),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "malformed signature header",
			settings:  webhookSettings(),
			body:      completed,
			signature: "garbage",
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "expired signature",
			settings:  webhookSettings(),
			body:      completed,
			signature: signPayload(completed, testWebhookSecret, now.Add(-time.Hour)),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "malformed payload",
			settings:  webhookSettings(),
			body:      []byte("not json"),
			signature: signPayload([]byte("not json"), testWebhookSecret, now),
			wantErr:   ErrInvalidPayload,
		},
		{
			name:       "pinned api version mismatch",
			settings:   webhookSettings(),
			body:       completed,
			signature:  signPayload(completed, testWebhookSecret, now),
			apiVersion: stripe.APIVersion,
			wantErr:    ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStripeWebhookService(loggerProvider, tt.settings)

			err := s.HandleEvent(ctx, tt.body, tt.signature, tt.apiVersion)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestStripeWebhookService_Dispatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		fixture string
		on      func(l *loggerMocks.ILogger)
	}{
		{
			fixture: "checkout_session_completed",
			on: func(l *loggerMocks.ILogger) {
				l.On("Infof", "checkout session completed: %s", "cs_test_1").Once()
			},
		},
		{
			fixture: "invoice_payment_succeeded",
			on: func(l *loggerMocks.ILogger) {
				l.On("Infof", "invoice payment succeeded: %s", "in_123").Once()
			},
		},
		{
			fixture: "customer_subscription_updated",
			on: func(l *loggerMocks.ILogger) {
				l.On("Infof", "subscription updated: %s (%s)", "sub_123", stripe.SubscriptionStatusActive).Once()
			},
		},
		{
			fixture: "customer_subscription_deleted",
			on: func(l *loggerMocks.ILogger) {
				l.On("Infof", "subscription deleted: %s", "sub_123").Once()
			},
		},
		{
			fixture: "customer_created",
			on: func(l *loggerMocks.ILogger) {
				l.On("Warningf", "unhandled event type: %s", "customer.created").Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			l := loggerMocks.NewILogger(t)
			l.On("Debugf", mock.Anything, mock.Anything).Maybe()
			l.On("SetLabels", mock.Anything).Once()
			tt.on(l)

			s := NewStripeWebhookService(func(ctx context.Context) logger.ILogger { return l }, webhookSettings())

			payload := readEvent(t, tt.fixture)
			err := s.HandleEvent(ctx, payload, signPayload(payload, testWebhookSecret, time.Now()), "")
			assert.NoError(t, err)
		})
	}
}

func TestStripeWebhookService_HandlerFailureIsAcknowledged(t *testing.T) {
	payload := []byte(`{"id":"evt_bad","object":"event","type":"invoice.payment_succeeded","data":{"object":{"id":["not","a","string"]}}}`)

	l := loggerMocks.NewILogger(t)
	l.On("Debugf", mock.Anything, mock.Anything).Maybe()
	l.On("SetLabels", mock.Anything).Once()
	l.On("Errorf", "failed to handle %s event %s: %s", "invoice.payment_succeeded", "evt_bad", mock.Anything).Once()

	s := NewStripeWebhookService(func(ctx context.Context) logger.ILogger { return l }, webhookSettings())

	err := s.HandleEvent(context.Background(), payload, signPayload(payload, testWebhookSecret, time.Now()), "")
	assert.NoError(t, err)
}
