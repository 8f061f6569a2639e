package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/units"
)

func (a *app) tempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "temp <celsius>",
		Short: "Convert Celsius to Fahrenheit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloat("temperature", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, units.CelsiusToFahrenheit(c))
		},
	}
}
