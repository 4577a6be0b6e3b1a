package service

import (
	"strings"

	"github.com/doitintl/hello/nova-checkout/common"
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

// Snapshot is the settings view of a single request. Values never change
// while a request is being served.
type Snapshot struct {
	stored    domain.Settings
	lookupEnv LookupEnv
}

func NewSnapshot(stored *domain.Settings, lookupEnv LookupEnv) *Snapshot {
	s := &Snapshot{lookupEnv: lookupEnv}
	if stored != nil {
		s.stored = *stored
	}

	return s
}

// Mode is the configured stripe mode; unset reads as test.
func (s *Snapshot) Mode() domain.Mode {
	if s.stored.Mode == "" {
		return domain.ModeTest
	}

	return s.stored.Mode
}

func (s *Snapshot) PortalEnabled() bool {
	return s.stored.PortalEnabled
}

// SecretKey resolves the stripe secret key of a country. The environment
// takes precedence over the stored value.
func (s *Snapshot) SecretKey(country pricingDomain.Country) (string, Source) {
	return ResolveSecret(
		EnvSource(s.lookupEnv, SecretKeyEnv(country)),
		StoredSource(s.stored.StoredSecretKey(country)),
	)
}

// WebhookSecret resolves the webhook signing secret. The environment takes
// precedence over the stored value.
func (s *Snapshot) WebhookSecret() (string, Source) {
	return ResolveSecret(
		EnvSource(s.lookupEnv, webhookSecretEnv),
		StoredSource(s.stored.WebhookSecret),
	)
}

// URL returns the success or cancel url of a country, falling back to a
// site relative default.
func (s *Snapshot) URL(kind domain.URLKind, country pricingDomain.Country) string {
	if v := strings.TrimSpace(s.stored.StoredURL(kind, country)); v != "" {
		return v
	}

	return common.SiteRelativeURL("/" + string(kind) + "/")
}
