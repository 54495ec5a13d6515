// Package pricing computes supply pack totals.
//
// The engine is deliberately forgiving: line item values arrive from
// loosely-typed JSON documents, so anything that does not look like a
// number degrades to zero instead of failing. Totals are accumulated
// with decimal arithmetic to keep money sums exact.
package pricing

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// LineItem is one priced line as it appears in a raw pack document.
// Quantity and UnitPrice are untyped on purpose; see Number.
type LineItem struct {
	Quantity  any
	UnitPrice any
}

// Number coerces a loosely-typed JSON value to a float64. Numeric
// types and numeric strings convert; nil and anything non-numeric
// yield 0.
func Number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ComputeTotal returns the sum of quantity×unitPrice over all items.
// Pure and total: an empty input yields 0 and invalid entries
// contribute 0 rather than failing.
func ComputeTotal(items []LineItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		qty := decimal.NewFromFloat(Number(it.Quantity))
		unit := decimal.NewFromFloat(Number(it.UnitPrice))
		total = total.Add(qty.Mul(unit))
	}
	f, _ := total.Float64()
	return f
}
