package service

import (
	"context"
	"strings"

	"github.com/doitintl/hello/nova-checkout/logger"
)

type StripeWebhookService struct {
	loggerProvider logger.Provider
	settings       SettingsProvider
	handlers       map[string]eventHandler
}

func NewStripeWebhookService(loggerProvider logger.Provider, settings SettingsProvider) *StripeWebhookService {
	s := &StripeWebhookService{
		loggerProvider: loggerProvider,
		settings:       settings,
	}

	s.handlers = s.eventHandlers()

	return s
}

func (s *StripeWebhookService) signingSecret(ctx context.Context) (string, error) {
	snapshot, err := s.settings.Snapshot(ctx)
	if err != nil {
		s.loggerProvider(ctx).Errorf("failed to read settings: %s", err)
		return "", ErrSettingsUnavailable
	}

	secret, source := snapshot.WebhookSecret()
	if strings.TrimSpace(secret) == "" {
		return "", ErrWebhookSecretNotConfigured
	}

	s.loggerProvider(ctx).Debugf("using webhook secret from %s source", source)

	return secret, nil
}
