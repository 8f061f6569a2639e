package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/trafficlight"
	"github.com/dmitrymomot/whitebox/pkg/vending"
)

func (a *app) lightCmd() *cobra.Command {
	var changes int

	cmd := &cobra.Command{
		Use:   "light",
		Short: "Cycle a traffic light and print each colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if changes < 0 {
				return fmt.Errorf("invalid --changes %d: must not be negative", changes)
			}
			light := trafficlight.New(trafficlight.WithLogger(a.log))
			if err := a.print(cmd, light.CurrentState()); err != nil {
				return err
			}
			for range changes {
				if err := a.print(cmd, light.ChangeState(cmd.Context())); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&changes, "changes", "n", 1, "number of state changes")
	return cmd
}

func (a *app) vendingCmd() *cobra.Command {
	var (
		coins int
		state string
	)

	cmd := &cobra.Command{
		Use:   "vending",
		Short: "Insert coins into a vending machine and print each reply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if coins < 0 {
				return fmt.Errorf("invalid --coins %d: must not be negative", coins)
			}
			m, err := vending.New(
				vending.WithState(vending.State(state)),
				vending.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			for range coins {
				if err := a.print(cmd, m.InsertCoin(cmd.Context())); err != nil {
					return err
				}
			}
			return a.print(cmd, "State: "+string(m.State()))
		},
	}
	cmd.Flags().IntVarP(&coins, "coins", "c", 1, "number of coins to insert")
	cmd.Flags().StringVar(&state, "state", string(vending.Ready), "state to start the machine in")
	return cmd
}
