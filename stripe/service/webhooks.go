package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/doitintl/hello/nova-checkout/logger"
	"github.com/doitintl/hello/nova-checkout/stripe/consts"
)

type eventHandler func(ctx context.Context, event *stripe.Event) error

func (s *StripeWebhookService) eventHandlers() map[string]eventHandler {
	return map[string]eventHandler{
		consts.EventCheckoutSessionCompleted:    s.handleCheckoutSessionCompleted,
		consts.EventInvoicePaymentSucceeded:     s.handleInvoicePaymentSucceeded,
		consts.EventCustomerSubscriptionUpdated: s.handleSubscriptionUpdated,
		consts.EventCustomerSubscriptionDeleted: s.handleSubscriptionDeleted,
	}
}

func constructWebhookEvent(body []byte, signature, secret, apiVersion string) (*stripe.Event, error) {
	if apiVersion == stripe.APIVersion {
		// the sender pinned the SDK api version, so a mismatch is a real error
		event, err := webhook.ConstructEvent(body, signature, secret)
		if err != nil {
			return nil, err
		}

		return &event, nil
	}

	event, err := webhook.ConstructEventWithOptions(body, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// verificationError separates signature failures from malformed payloads.
func verificationError(err error) error {
	switch {
	case errors.Is(err, webhook.ErrNotSigned),
		errors.Is(err, webhook.ErrInvalidHeader),
		errors.Is(err, webhook.ErrNoValidSignature),
		errors.Is(err, webhook.ErrTooOld):
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
}

// HandleEvent verifies a webhook delivery and dispatches it by event type.
// Handler failures are logged but never returned, so stripe does not retry
// a delivery that was verified.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, body []byte, signature string, apiVersion string) error {
	l := s.loggerProvider(ctx)

	if signature == "" {
		return ErrMissingSignature
	}

	secret, err := s.signingSecret(ctx)
	if err != nil {
		return err
	}

	event, err := constructWebhookEvent(body, signature, secret, apiVersion)
	if err != nil {
		l.Warningf("webhook verification failed: %s", err)
		return verificationError(err)
	}

	l.SetLabels(map[string]string{
		logger.LabelEventType: event.Type,
		logger.LabelEventID:   event.ID,
		"eventApiVersion":     event.APIVersion,
	})

	handler, ok := s.handlers[event.Type]
	if !ok {
		l.Warningf("unhandled event type: %s", event.Type)
		return nil
	}

	if err := handler(ctx, event); err != nil {
		l.Errorf("failed to handle %s event %s: %s", event.Type, event.ID, err)
	}

	return nil
}

func (s *StripeWebhookService) handleCheckoutSessionCompleted(ctx context.Context, event *stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("checkout session completed: %s", session.ID)

	return nil
}

func (s *StripeWebhookService) handleInvoicePaymentSucceeded(ctx context.Context, event *stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("invoice payment succeeded: %s", invoice.ID)

	return nil
}

func (s *StripeWebhookService) handleSubscriptionUpdated(ctx context.Context, event *stripe.Event) error {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("subscription updated: %s (%s)", subscription.ID, subscription.Status)

	return nil
}

func (s *StripeWebhookService) handleSubscriptionDeleted(ctx context.Context, event *stripe.Event) error {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		return err
	}

	s.loggerProvider(ctx).Infof("subscription deleted: %s", subscription.ID)

	return nil
}
