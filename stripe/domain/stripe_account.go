package domain

import (
	pricingDomain "github.com/doitintl/hello/nova-checkout/pricing/domain"
)

// Each country is billed through its own stripe account.
var StripeAccountNames = map[pricingDomain.Country]string{
	pricingDomain.CountryAU: "Nova Australia",
	pricingDomain.CountryNZ: "Nova New Zealand",
}
