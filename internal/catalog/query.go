package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SortKey int

const (
	SortRelevance SortKey = iota
	SortPriceAsc
	SortPriceDesc
	SortRatingDesc
)

var sortKeyNames = map[SortKey]string{
	SortRelevance:  "relevance",
	SortPriceAsc:   "price-asc",
	SortPriceDesc:  "price-desc",
	SortRatingDesc: "rating-desc",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

func ParseSortKey(s string) (SortKey, error) {
	for k, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return SortRelevance, fmt.Errorf("unknown sort key %q", s)
}

// DefaultMaxPrice is the initial price ceiling; it covers the whole built-in catalog.
func DefaultMaxPrice() decimal.Decimal {
	return decimal.NewFromInt(600)
}

type Criteria struct {
	Brands     Set[domain.Brand]
	Categories Set[domain.Category]
	MaxPrice   decimal.Decimal
	Query      string
	Sort       SortKey
}

func DefaultCriteria() Criteria {
	return Criteria{
		Brands:     NewSet[domain.Brand](),
		Categories: NewSet[domain.Category](),
		MaxPrice:   DefaultMaxPrice(),
		Sort:       SortRelevance,
	}
}

func (c Criteria) ToggleBrand(b domain.Brand) Criteria {
	c.Brands = c.Brands.Toggle(b)
	return c
}

func (c Criteria) ToggleCategory(cat domain.Category) Criteria {
	c.Categories = c.Categories.Toggle(cat)
	return c
}

func (c Criteria) WithQuery(q string) Criteria {
	c.Query = q
	return c
}

func (c Criteria) WithMaxPrice(p decimal.Decimal) Criteria {
	c.MaxPrice = p
	return c
}

func (c Criteria) WithSort(k SortKey) Criteria {
	c.Sort = k
	return c
}

// Visible returns the products matching c, ordered by c.Sort.
// The result never aliases products and is empty, not nil, when nothing matches.
func Visible(products []domain.Product, c Criteria) []domain.Product {
	// blank queries do not filter; others match as typed, surrounding spaces included
	lower := cases.Lower(language.Und)
	var query string
	if strings.TrimSpace(c.Query) != "" {
		query = lower.String(c.Query)
	}

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Price.Amount.GreaterThan(c.MaxPrice) {
			continue
		}
		if c.Brands.Len() > 0 && !c.Brands.Has(p.Brand) {
			continue
		}
		if c.Categories.Len() > 0 && !c.Categories.Has(p.Category) {
			continue
		}
		if query != "" && !matchesQuery(lower, p, query) {
			continue
		}
		result = append(result, p)
	}

	switch c.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case SortRatingDesc:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	default:
		// catalog order
	}

	return result
}

func matchesQuery(lower cases.Caser, p domain.Product, query string) bool {
	return strings.Contains(lower.String(p.Name), query) ||
		strings.Contains(lower.String(string(p.Brand)), query)
}

// PriceCeiling returns the highest price in products, zero for an empty catalog.
func PriceCeiling(products []domain.Product) decimal.Decimal {
	ceiling := decimal.Zero
	for _, p := range products {
		ceiling = decimal.Max(ceiling, p.Price.Amount)
	}
	return ceiling
}
