package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/numbers"
)

func (a *app) evenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "even <n>",
		Short: "Report whether an integer is even",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("number", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, numbers.IsEven(n))
		},
	}
}

func (a *app) divideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide <a> <b>",
		Short: "Divide a by b; dividing by zero gives 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats("number", args)
			if err != nil {
				return err
			}
			return a.print(cmd, numbers.Divide(v[0], v[1]))
		},
	}
}

func (a *app) gradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>",
		Short: "Letter grade for a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := parseFloat("score", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, numbers.GetGrade(score))
		},
	}
}

func (a *app) triangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triangle <a> <b> <c>",
		Short: "Check whether three sides form a triangle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats("side", args)
			if err != nil {
				return err
			}
			return a.print(cmd, numbers.IsTriangle(v[0], v[1], v[2]))
		},
	}
}

func (a *app) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <n>",
		Short: "Classify a number as Negative, Zero or Positive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseFloat("number", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, numbers.CheckNumberStatus(n))
		},
	}
}
