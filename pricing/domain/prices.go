package domain

type Country string

const (
	CountryAU Country = "AU"
	CountryNZ Country = "NZ"
)

type Plan string

const (
	PlanPlus     Plan = "plus"
	PlanPro      Plan = "pro"
	PlanUltimate Plan = "ultimate"
)

type SupportTier string

const (
	SupportBasic    SupportTier = "basic"
	SupportPlus     SupportTier = "plus"
	SupportUltimate SupportTier = "ultimate"
)

type BillingPeriod string

const (
	BillingQuarterly BillingPeriod = "quarterly"
	BillingAnnual    BillingPeriod = "annual"
)

// Closed sets accepted by the checkout, in display order.
var (
	Countries      = []Country{CountryAU, CountryNZ}
	Plans          = []Plan{PlanPlus, PlanPro, PlanUltimate}
	SupportTiers   = []SupportTier{SupportBasic, SupportPlus, SupportUltimate}
	BillingPeriods = []BillingPeriod{BillingQuarterly, BillingAnnual}
)

// SupportPriceIDs holds one stripe price id per support tier.
type SupportPriceIDs struct {
	Basic    string `json:"basic" yaml:"basic"`
	Plus     string `json:"plus" yaml:"plus"`
	Ultimate string `json:"ultimate" yaml:"ultimate"`
}

// For returns the price id of the given support tier. Unknown tiers and
// empty ids are reported as absent.
func (s SupportPriceIDs) For(tier SupportTier) (string, bool) {
	var id string

	switch tier {
	case SupportBasic:
		id = s.Basic
	case SupportPlus:
		id = s.Plus
	case SupportUltimate:
		id = s.Ultimate
	}

	return id, id != ""
}

// PriceEntry is the set of prices sold for a single (country, plan, billing period).
type PriceEntry struct {
	PlanPriceID     string          `json:"plan" yaml:"plan"`
	SupportPriceIDs SupportPriceIDs `json:"support" yaml:"support"`
}

// PriceTable maps country -> plan -> billing period -> prices.
type PriceTable map[Country]map[Plan]map[BillingPeriod]PriceEntry

// PriceIDs is a fully resolved pair of line item prices.
type PriceIDs struct {
	Plan    string `json:"plan"`
	Support string `json:"support"`
}
