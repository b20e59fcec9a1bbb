package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// CategorySummary is one aggregated row of a summarize query.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// CategoryAmount is the (category, amount) projection a store feeds into
// Summarize.
type CategoryAmount struct {
	Category string
	Amount   float64
}

type categoryTotal struct {
	category string
	total    decimal.Decimal
	count    int64
}

// Summarize groups rows by category. Totals are accumulated as decimals so
// that sums of two-place amounts stay exact. Output is ordered by total
// descending, then category ascending. A total too large for float64 is
// reported as ErrTotalOverflow.
func Summarize(rows []CategoryAmount) ([]CategorySummary, error) {
	groups := make(map[string]*categoryTotal)
	for _, r := range rows {
		g, ok := groups[r.Category]
		if !ok {
			g = &categoryTotal{category: r.Category, total: decimal.Zero}
			groups[r.Category] = g
		}
		g.total = g.total.Add(decimal.NewFromFloat(r.Amount))
		g.count++
	}

	totals := make([]*categoryTotal, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, g)
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].total.Cmp(totals[j].total); c != 0 {
			return c > 0
		}
		return totals[i].category < totals[j].category
	})

	out := make([]CategorySummary, len(totals))
	for i, g := range totals {
		total := g.total.InexactFloat64()
		if math.IsInf(total, 0) {
			return nil, fmt.Errorf("%w: category %q", ErrTotalOverflow, g.category)
		}
		out[i] = CategorySummary{
			Category: g.category,
			Total:    total,
			Count:    g.count,
		}
	}
	return out, nil
}
