package pricing

import (
	"fmt"

	"github.com/dmitrymomot/whitebox/pkg/sanitizer"
)

// OrderItem is a single order line.
type OrderItem struct {
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price" yaml:"price"`
}

// ShippableItem is a parcel contributing its weight to a shipment.
type ShippableItem struct {
	Weight float64 `json:"weight" yaml:"weight"`
}

// ShippingMethod selects the shipping rate column.
type ShippingMethod string

const (
	Standard ShippingMethod = "standard"
	Express  ShippingMethod = "express"
)

// Category is a product price band label.
type Category string

const (
	CategoryA Category = "Category A"
	CategoryB Category = "Category B"
	CategoryC Category = "Category C"
	CategoryD Category = "Category D"
)

// Calculator applies a validated Rules set.
type Calculator struct {
	rules Rules
}

// NewCalculator validates rules and returns a calculator bound to them.
func NewCalculator(rules Rules) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rules: rules.clone()}, nil
}

// MustNewCalculator is like NewCalculator but panics on invalid rules.
func MustNewCalculator(rules Rules) *Calculator {
	c, err := NewCalculator(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns a copy of the rules the calculator applies.
func (c *Calculator) Rules() Rules {
	return c.rules.clone()
}

// TotalDiscount returns the discount amount owed on an order total.
func (c *Calculator) TotalDiscount(total float64) float64 {
	return sanitizer.RoundMoney(total * rateFor(c.rules.Discount, total))
}

// OrderTotal sums quantity*price per line, less the quantity discount of each
// line. Lines with a negative subtotal count as zero.
func (c *Calculator) OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		subtotal := sanitizer.ClampToNonNegative(float64(item.Quantity) * item.Price)
		total += subtotal * (1 - rateFor(c.rules.Quantity, float64(item.Quantity)))
	}
	return sanitizer.RoundMoney(total)
}

// ShippingCost returns the flat rate for the combined weight of items.
// Negative weights count as zero.
func (c *Calculator) ShippingCost(items []ShippableItem, method ShippingMethod) (float64, error) {
	rates, ok := c.rules.Shipping.Rates[method]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShippingMethod, method)
	}

	var weight float64
	for _, item := range items {
		weight += sanitizer.ClampToNonNegative(item.Weight)
	}

	band := len(c.rules.Shipping.Limits)
	for i, limit := range c.rules.Shipping.Limits {
		if weight <= limit {
			band = i
			break
		}
	}
	return sanitizer.RoundMoney(rates[band]), nil
}

// Category returns the label of the first band containing price, or the fallback.
func (c *Calculator) Category(price float64) Category {
	for _, band := range c.rules.Categories {
		if band.contains(price) {
			return band.Category
		}
	}
	return c.rules.Fallback
}

func rateFor(tiers []Tier, v float64) float64 {
	for _, t := range tiers {
		if t.matches(v) {
			return t.Rate
		}
	}
	return 0
}

var defaultCalculator = MustNewCalculator(DefaultRules())

// CalculateTotalDiscount: 0 below 100, 10% from 100 to 500 inclusive, 20% above 500.
func CalculateTotalDiscount(total float64) float64 {
	return defaultCalculator.TotalDiscount(total)
}

// CalculateOrderTotal discounts lines with more than 10 units by 10% and
// lines with more than 5 units by 5%. A line of exactly 5 units pays full price.
func CalculateOrderTotal(items []OrderItem) float64 {
	return defaultCalculator.OrderTotal(items)
}

// CalculateItemsShippingCost charges by total weight: up to 5, up to 10, above 10.
// Standard costs 10, 15, 20 and express 20, 30, 40. Any other method
// yields an error wrapping ErrInvalidShippingMethod.
func CalculateItemsShippingCost(items []ShippableItem, method ShippingMethod) (float64, error) {
	return defaultCalculator.ShippingCost(items, method)
}

// CategorizeProduct bands prices as [10,50) A, [50,100) B, [100,200) C, anything else D.
func CategorizeProduct(price float64) Category {
	return defaultCalculator.Category(price)
}
