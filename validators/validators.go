// Package validators normalizes untrusted checkout input and checks it
// against the closed sets the catalog sells. Bad input is reported with a
// false ok value, never with a panic or an error.
package validators

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/doitintl/hello/nova-checkout/pricing/domain"
)

var validate = validator.New()

var (
	countryTag = oneOf(domain.Countries)
	planTag    = oneOf(domain.Plans)
	supportTag = oneOf(domain.SupportTiers)
	billingTag = oneOf(domain.BillingPeriods)
)

const usersTag = "min=1"

// Country returns the upper-cased country code, e.g. "au" -> AU.
func Country(raw interface{}) (domain.Country, bool) {
	v, ok := normalize(raw, strings.ToUpper, countryTag)
	return domain.Country(v), ok
}

// Plan returns the lower-cased plan name.
func Plan(raw interface{}) (domain.Plan, bool) {
	v, ok := normalize(raw, strings.ToLower, planTag)
	return domain.Plan(v), ok
}

// Support returns the lower-cased support tier.
func Support(raw interface{}) (domain.SupportTier, bool) {
	v, ok := normalize(raw, strings.ToLower, supportTag)
	return domain.SupportTier(v), ok
}

// Billing returns the lower-cased billing period.
func Billing(raw interface{}) (domain.BillingPeriod, bool) {
	v, ok := normalize(raw, strings.ToLower, billingTag)
	return domain.BillingPeriod(v), ok
}

// Users coerces the seat count to an integer, truncating decimals, and
// requires at least one seat.
func Users(raw interface{}) (int64, bool) {
	n, ok := toInt(raw)
	if !ok {
		return 0, false
	}

	if err := validate.Var(n, usersTag); err != nil {
		return 0, false
	}

	return n, true
}

func normalize(raw interface{}, fold func(string) string, tag string) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}

	s = fold(sanitize(s))
	if s == "" {
		return "", false
	}

	if err := validate.Var(s, tag); err != nil {
		return "", false
	}

	return s, true
}

// sanitize collapses all whitespace runs, including tabs and line breaks, and trims the value.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func toInt(raw interface{}) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float32:
		return truncate(float64(v))
	case float64:
		return truncate(v)
	case string:
		s := sanitize(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}

		return truncate(f)
	default:
		return 0, false
	}
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}

	return int64(f), true
}

func oneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return fmt.Sprintf("oneof=%s", strings.Join(parts, " "))
}
