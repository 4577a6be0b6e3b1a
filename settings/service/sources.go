package service

import (
	"os"
	"strings"

	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
)

// Source names where a secret was resolved from.
type Source string

const (
	SourceNone   Source = ""
	SourceEnv    Source = "env"
	SourceStored Source = "stored"
)

const webhookSecretEnv = "STRIPE_WEBHOOK_SECRET"

// LookupEnv reads a process environment variable.
type LookupEnv func(key string) (string, bool)

type secretSource struct {
	name  Source
	value func() string
}

// EnvSource reads a secret from a process environment variable.
func EnvSource(lookup LookupEnv, key string) secretSource {
	return secretSource{
		name: SourceEnv,
		value: func() string {
			if lookup == nil {
				lookup = os.LookupEnv
			}

			v, _ := lookup(key)

			return v
		},
	}
}

// StoredSource returns a secret read from the settings store.
func StoredSource(value string) secretSource {
	return secretSource{
		name: SourceStored,
		value: func() string {
			return value
		},
	}
}

// ResolveSecret returns the first non-blank value of sources, in order.
func ResolveSecret(sources ...secretSource) (string, Source) {
	for _, src := range sources {
		if v := strings.TrimSpace(src.value()); v != "" {
			return v, src.name
		}
	}

	return "", SourceNone
}

// SecretKeyEnv returns the environment variable holding a country secret, e.g. STRIPE_AU_SK.
func SecretKeyEnv(country pricingDomain.Country) string {
	return "STRIPE_" + strings.ToUpper(string(country)) + "_SK"
}
