package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
)

type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

type Key string

// Persisted settings keys.
const (
	KeyMode          Key = "mode"
	KeyAUSecretKey   Key = "au_sk"
	KeyNZSecretKey   Key = "nz_sk"
	KeyWebhookSecret Key = "webhook_secret"
	KeySuccessURLAU  Key = "success_url_au"
	KeyCancelURLAU   Key = "cancel_url_au"
	KeySuccessURLNZ  Key = "success_url_nz"
	KeyCancelURLNZ   Key = "cancel_url_nz"
	KeyPortalEnabled Key = "portal_enabled"
)

var Keys = []Key{
	KeyMode,
	KeyAUSecretKey,
	KeyNZSecretKey,
	KeyWebhookSecret,
	KeySuccessURLAU,
	KeyCancelURLAU,
	KeySuccessURLNZ,
	KeyCancelURLNZ,
	KeyPortalEnabled,
}

type URLKind string

const (
	URLKindSuccess URLKind = "success"
	URLKindCancel  URLKind = "cancel"
)

var (
	ErrUnknownKey      = errors.New("unknown settings key")
	ErrInvalidSettings = errors.New("invalid settings")
)

const (
	testKeyPrefix = "sk_test_"
	liveKeyPrefix = "sk_live_"

	redacted = "********"
)

// Settings is the persisted checkout configuration. Fields left empty fall
// back to their defaults when read.
type Settings struct {
	Mode          Mode   `firestore:"mode" yaml:"mode,omitempty" validate:"omitempty,oneof=test live"`
	AUSecretKey   string `firestore:"au_sk" yaml:"au_sk,omitempty"`
	NZSecretKey   string `firestore:"nz_sk" yaml:"nz_sk,omitempty"`
	WebhookSecret string `firestore:"webhook_secret" yaml:"webhook_secret,omitempty"`
	SuccessURLAU  string `firestore:"success_url_au" yaml:"success_url_au,omitempty" validate:"omitempty,url"`
	CancelURLAU   string `firestore:"cancel_url_au" yaml:"cancel_url_au,omitempty" validate:"omitempty,url"`
	SuccessURLNZ  string `firestore:"success_url_nz" yaml:"success_url_nz,omitempty" validate:"omitempty,url"`
	CancelURLNZ   string `firestore:"cancel_url_nz" yaml:"cancel_url_nz,omitempty" validate:"omitempty,url"`
	PortalEnabled bool   `firestore:"portal_enabled" yaml:"portal_enabled"`
}

var validate = validator.New()

// Defaults returns the settings written on first install. siteURL is the
// public site base url without a trailing slash.
func Defaults(siteURL string) *Settings {
	return &Settings{
		Mode:         ModeTest,
		SuccessURLAU: siteURL + "/success-au/",
		CancelURLAU:  siteURL + "/cancel-au/",
		SuccessURLNZ: siteURL + "/success-nz/",
		CancelURLNZ:  siteURL + "/cancel-nz/",
	}
}

// Validate reports every invalid field at once.
func (s *Settings) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}

		for _, fe := range validationErrs {
			result = multierror.Append(result, fmt.Errorf("%s: invalid value %q (%s)", fe.Field(), fe.Value(), fe.Tag()))
		}
	}

	for _, key := range []Key{KeyAUSecretKey, KeyNZSecretKey, KeyWebhookSecret} {
		if v, _ := s.Get(key); v == redacted {
			result = multierror.Append(result, fmt.Errorf("%s: masked value cannot be stored", key))
		}
	}

	if result == nil {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidSettings, result.Error())
}

// StoredSecretKey returns the stripe secret key stored for a country.
func (s *Settings) StoredSecretKey(country pricingDomain.Country) string {
	v, _ := s.Get(SecretKeyName(country))
	return v
}

// StoredURL returns the stored success or cancel url of a country.
func (s *Settings) StoredURL(kind URLKind, country pricingDomain.Country) string {
	v, _ := s.Get(URLKey(kind, country))
	return v
}

// SecretKeyName returns the settings key of a country secret, e.g. au_sk.
func SecretKeyName(country pricingDomain.Country) Key {
	return Key(strings.ToLower(string(country)) + "_sk")
}

// URLKey returns the settings key of a country url, e.g. success_url_au.
func URLKey(kind URLKind, country pricingDomain.Country) Key {
	return Key(fmt.Sprintf("%s_url_%s", kind, strings.ToLower(string(country))))
}

// Get returns the raw value of key.
func (s *Settings) Get(key Key) (string, bool) {
	switch key {
	case KeyMode:
		return string(s.Mode), true
	case KeyAUSecretKey:
		return s.AUSecretKey, true
	case KeyNZSecretKey:
		return s.NZSecretKey, true
	case KeyWebhookSecret:
		return s.WebhookSecret, true
	case KeySuccessURLAU:
		return s.SuccessURLAU, true
	case KeyCancelURLAU:
		return s.CancelURLAU, true
	case KeySuccessURLNZ:
		return s.SuccessURLNZ, true
	case KeyCancelURLNZ:
		return s.CancelURLNZ, true
	case KeyPortalEnabled:
		return strconv.FormatBool(s.PortalEnabled), true
	default:
		return "", false
	}
}

// Set assigns value to key. Values are trimmed; the bool key accepts strconv.ParseBool input.
func (s *Settings) Set(key Key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyMode:
		s.Mode = Mode(strings.ToLower(value))
	case KeyAUSecretKey:
		s.AUSecretKey = value
	case KeyNZSecretKey:
		s.NZSecretKey = value
	case KeyWebhookSecret:
		s.WebhookSecret = value
	case KeySuccessURLAU:
		s.SuccessURLAU = value
	case KeyCancelURLAU:
		s.CancelURLAU = value
	case KeySuccessURLNZ:
		s.SuccessURLNZ = value
	case KeyCancelURLNZ:
		s.CancelURLNZ = value
	case KeyPortalEnabled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		s.PortalEnabled = enabled
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return nil
}

// Redacted returns a copy safe for display, with every secret masked.
func (s *Settings) Redacted() *Settings {
	c := *s
	c.AUSecretKey = redact(c.AUSecretKey)
	c.NZSecretKey = redact(c.NZSecretKey)
	c.WebhookSecret = redact(c.WebhookSecret)

	return &c
}

func redact(v string) string {
	if v == "" {
		return ""
	}

	return redacted
}

// IsSecretKey reports whether key holds a credential.
func IsSecretKey(key Key) bool {
	return key == KeyAUSecretKey || key == KeyNZSecretKey || key == KeyWebhookSecret
}

// KeyMatchesMode reports whether a stripe secret key belongs to the given mode.
// Keys without a recognised prefix (restricted keys, for instance) are accepted.
func KeyMatchesMode(mode Mode, secretKey string) bool {
	switch {
	case mode == ModeLive && strings.HasPrefix(secretKey, testKeyPrefix):
		return false
	case mode != ModeLive && strings.HasPrefix(secretKey, liveKeyPrefix):
		return false
	default:
		return true
	}
}
