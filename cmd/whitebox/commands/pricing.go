package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/pricing"
	"github.com/dmitrymomot/whitebox/pkg/sanitizer"
)

func (a *app) discountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discount <total>",
		Short: "Discount owed on an order total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseFloat("total", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.calc.TotalDiscount(total))
		},
	}
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "order <QTYxPRICE>...",
		Short:   "Total an order, applying quantity discounts per line",
		Example: "  whitebox order 4x10 8x10 12x10",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]pricing.OrderItem, 0, len(args))
			for _, arg := range args {
				item, err := parseOrderItem(arg)
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			return a.print(cmd, a.calc.OrderTotal(items))
		},
	}
}

func (a *app) shippingCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "shipping <weight>...",
		Short: "Shipping cost for parcels of the given weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := parseFloats("weight", args)
			if err != nil {
				return err
			}
			items := make([]pricing.ShippableItem, 0, len(weights))
			for _, w := range weights {
				items = append(items, pricing.ShippableItem{Weight: w})
			}

			cost, err := a.calc.ShippingCost(items, pricing.ShippingMethod(sanitizer.TrimToLower(method)))
			if err != nil {
				return err
			}
			return a.print(cmd, cost)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", string(pricing.Standard), "shipping method")
	return cmd
}

func (a *app) categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <price>",
		Short: "Price band of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseFloat("price", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.calc.Category(price))
		},
	}
}
