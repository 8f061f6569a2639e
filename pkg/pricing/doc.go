// Package pricing computes order discounts, line totals, shipping costs and
// product categories from tier tables.
//
// The package-level functions use DefaultRules. A Calculator built from
// LoadRules applies an alternative table set read from YAML:
//
//	rules, err := pricing.LoadRules(f)
//	if err != nil {
//		return err
//	}
//	calc, err := pricing.NewCalculator(rules)
//	if err != nil {
//		return err
//	}
//	cost, err := calc.ShippingCost(items, pricing.Express)
//
// Monetary results are rounded to whole cents with sanitizer.RoundMoney.
// Calculators are immutable and safe for concurrent use.
package pricing
