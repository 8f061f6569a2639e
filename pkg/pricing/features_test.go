package pricing_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"

	"github.com/dmitrymomot/whitebox/pkg/pricing"
)

type pricingTestContext struct {
	discount float64
	items    []pricing.OrderItem
	parcels  []pricing.ShippableItem
	cost     float64
	err      error
}

func (c *pricingTestContext) reset() {
	*c = pricingTestContext{}
}

func (c *pricingTestContext) theOrderTotalIs(total float64) error {
	c.discount = pricing.CalculateTotalDiscount(total)
	return nil
}

func (c *pricingTestContext) theDiscountIs(want float64) error {
	if c.discount != want {
		return fmt.Errorf("expected discount %v, got %v", want, c.discount)
	}
	return nil
}

func (c *pricingTestContext) anOrderWithLines(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		qty, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		c.items = append(c.items, pricing.OrderItem{Quantity: qty, Price: price})
	}
	return nil
}

func (c *pricingTestContext) theLinesTotal(want float64) error {
	if got := pricing.CalculateOrderTotal(c.items); got != want {
		return fmt.Errorf("expected order total %v, got %v", want, got)
	}
	return nil
}

func (c *pricingTestContext) parcelsWeighing(weight float64) error {
	c.parcels = append(c.parcels, pricing.ShippableItem{Weight: weight})
	return nil
}

func (c *pricingTestContext) theyShip(method string) error {
	c.cost, c.err = pricing.CalculateItemsShippingCost(c.parcels, pricing.ShippingMethod(method))
	return nil
}

func (c *pricingTestContext) shippingCosts(want float64) error {
	if c.err != nil {
		return c.err
	}
	if c.cost != want {
		return fmt.Errorf("expected shipping %v, got %v", want, c.cost)
	}
	return nil
}

func (c *pricingTestContext) shippingFailsWithAnInvalidMethodError() error {
	if !errors.Is(c.err, pricing.ErrInvalidShippingMethod) {
		return fmt.Errorf("expected ErrInvalidShippingMethod, got %v", c.err)
	}
	return nil
}

func (c *pricingTestContext) aProductPricedIs(price float64, category string) error {
	if got := pricing.CategorizeProduct(price); string(got) != category {
		return fmt.Errorf("expected %q, got %q", category, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &pricingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an order with lines:$`, tc.anOrderWithLines)
	ctx.Step(`^parcels weighing (\d+(?:\.\d+)?)$`, tc.parcelsWeighing)

	// When steps
	ctx.Step(`^the order total is (\d+(?:\.\d+)?)$`, tc.theOrderTotalIs)
	ctx.Step(`^they ship "([^"]*)"$`, tc.theyShip)

	// Then steps
	ctx.Step(`^the lines total (\d+(?:\.\d+)?)$`, tc.theLinesTotal)
	ctx.Step(`^the discount is (\d+(?:\.\d+)?)$`, tc.theDiscountIs)
	ctx.Step(`^shipping costs (\d+(?:\.\d+)?)$`, tc.shippingCosts)
	ctx.Step(`^shipping fails with an invalid method error$`, tc.shippingFailsWithAnInvalidMethodError)
	ctx.Step(`^a product priced (\d+(?:\.\d+)?) is "([^"]*)"$`, tc.aProductPricedIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
