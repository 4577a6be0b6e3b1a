package service

import "github.com/doitintl/hello/nova-checkout/pricing/domain"

// defaultPriceTable holds the stripe price ids of both accounts.
// AU prices live in the AU stripe account, NZ prices in the NZ account.
var defaultPriceTable = domain.PriceTable{
	domain.CountryAU: {
		domain.PlanPlus: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_au_plus_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_quarterly",
					Plus:     "price_au_support_plus_quarterly",
					Ultimate: "price_au_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_au_plus_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_annual",
					Plus:     "price_au_support_plus_annual",
					Ultimate: "price_au_support_ultimate_annual",
				},
			},
		},
		domain.PlanPro: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_au_pro_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_quarterly",
					Plus:     "price_au_support_plus_quarterly",
					Ultimate: "price_au_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_au_pro_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_annual",
					Plus:     "price_au_support_plus_annual",
					Ultimate: "price_au_support_ultimate_annual",
				},
			},
		},
		domain.PlanUltimate: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_au_ultimate_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_quarterly",
					Plus:     "price_au_support_plus_quarterly",
					Ultimate: "price_au_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_au_ultimate_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_au_support_basic_annual",
					Plus:     "price_au_support_plus_annual",
					Ultimate: "price_au_support_ultimate_annual",
				},
			},
		},
	},
	domain.CountryNZ: {
		domain.PlanPlus: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_nz_plus_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_quarterly",
					Plus:     "price_nz_support_plus_quarterly",
					Ultimate: "price_nz_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_nz_plus_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_annual",
					Plus:     "price_nz_support_plus_annual",
					Ultimate: "price_nz_support_ultimate_annual",
				},
			},
		},
		domain.PlanPro: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_nz_pro_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_quarterly",
					Plus:     "price_nz_support_plus_quarterly",
					Ultimate: "price_nz_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_nz_pro_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_annual",
					Plus:     "price_nz_support_plus_annual",
					Ultimate: "price_nz_support_ultimate_annual",
				},
			},
		},
		domain.PlanUltimate: {
			domain.BillingQuarterly: {
				PlanPriceID: "price_nz_ultimate_quarterly",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_quarterly",
					Plus:     "price_nz_support_plus_quarterly",
					Ultimate: "price_nz_support_ultimate_quarterly",
				},
			},
			domain.BillingAnnual: {
				PlanPriceID: "price_nz_ultimate_annual",
				SupportPriceIDs: domain.SupportPriceIDs{
					Basic:    "price_nz_support_basic_annual",
					Plus:     "price_nz_support_plus_annual",
					Ultimate: "price_nz_support_ultimate_annual",
				},
			},
		},
	},
}
