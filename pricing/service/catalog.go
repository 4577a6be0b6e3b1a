package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/doitintl/hello/nova-checkout/pricing/domain"
)

var (
	ErrPriceNotFound     = errors.New("price configuration not found")
	ErrIncompleteCatalog = errors.New("incomplete price catalog")
)

// Catalog resolves stripe price ids from a static, read-only price table.
type Catalog struct {
	table domain.PriceTable
}

// NewCatalog returns the catalog of the compiled-in price table.
func NewCatalog() *Catalog {
	return &Catalog{defaultPriceTable}
}

// NewCatalogWithTable returns a catalog over the given table after checking it is complete.
func NewCatalogWithTable(table domain.PriceTable) (*Catalog, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	return &Catalog{table}, nil
}

// LoadCatalogFile reads a yaml price table, as exported by novactl, from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price catalog %s: %w", path, err)
	}

	var table domain.PriceTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse price catalog %s: %w", path, err)
	}

	return NewCatalogWithTable(table)
}

// Table returns the underlying price table.
func (c *Catalog) Table() domain.PriceTable {
	return c.table
}

// Map returns the plan table of a country, or nil when the country is unknown.
func (c *Catalog) Map(country domain.Country) map[domain.Plan]map[domain.BillingPeriod]domain.PriceEntry {
	return c.table[normalizeCountry(country)]
}

// Countries returns the countries of the catalog, sorted.
func (c *Catalog) Countries() []domain.Country {
	countries := maps.Keys(c.table)
	slices.Sort(countries)

	return countries
}

// Resolve returns the plan and support price ids for the given selection. It
// never returns a partial result: if either price is missing ErrPriceNotFound
// is returned.
func (c *Catalog) Resolve(country domain.Country, plan domain.Plan, support domain.SupportTier, billing domain.BillingPeriod) (domain.PriceIDs, error) {
	plans := c.Map(country)
	if plans == nil {
		return domain.PriceIDs{}, fmt.Errorf("%w: unknown country %q", ErrPriceNotFound, country)
	}

	entry, ok := plans[plan][billing]
	if !ok || entry.PlanPriceID == "" {
		return domain.PriceIDs{}, fmt.Errorf("%w: %s %s %s", ErrPriceNotFound, country, plan, billing)
	}

	supportPriceID, ok := entry.SupportPriceIDs.For(support)
	if !ok {
		return domain.PriceIDs{}, fmt.Errorf("%w: %s %s %s support %s", ErrPriceNotFound, country, plan, billing, support)
	}

	return domain.PriceIDs{
		Plan:    entry.PlanPriceID,
		Support: supportPriceID,
	}, nil
}

// Validate reports whether both a plan and a support price resolve.
func (c *Catalog) Validate(country domain.Country, plan domain.Plan, support domain.SupportTier, billing domain.BillingPeriod) bool {
	ids, err := c.Resolve(country, plan, support, billing)

	return err == nil && ids.Plan != "" && ids.Support != ""
}

// ValidateTable checks that every (country, plan, billing period) combination
// is present with one plan price and three support prices, and that the table
// holds nothing else.
func ValidateTable(table domain.PriceTable) error {
	var result *multierror.Error

	for country, plans := range table {
		if !slices.Contains(domain.Countries, country) {
			result = multierror.Append(result, fmt.Errorf("unknown country %q", country))
		}

		for plan, periods := range plans {
			if !slices.Contains(domain.Plans, plan) {
				result = multierror.Append(result, fmt.Errorf("%s: unknown plan %q", country, plan))
			}

			for billing := range periods {
				if !slices.Contains(domain.BillingPeriods, billing) {
					result = multierror.Append(result, fmt.Errorf("%s %s: unknown billing period %q", country, plan, billing))
				}
			}
		}
	}

	for _, country := range domain.Countries {
		for _, plan := range domain.Plans {
			for _, billing := range domain.BillingPeriods {
				entry, ok := table[country][plan][billing]
				if !ok {
					result = multierror.Append(result, fmt.Errorf("%s %s %s: missing entry", country, plan, billing))
					continue
				}

				if entry.PlanPriceID == "" {
					result = multierror.Append(result, fmt.Errorf("%s %s %s: missing plan price", country, plan, billing))
				}

				for _, tier := range domain.SupportTiers {
					if _, ok := entry.SupportPriceIDs.For(tier); !ok {
						result = multierror.Append(result, fmt.Errorf("%s %s %s: missing %s support price", country, plan, billing, tier))
					}
				}
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %s", ErrIncompleteCatalog, err)
	}

	return nil
}

func normalizeCountry(country domain.Country) domain.Country {
	return domain.Country(strings.ToUpper(strings.TrimSpace(string(country))))
}
