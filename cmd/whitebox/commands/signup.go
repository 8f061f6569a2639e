package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/sanitizer"
	"github.com/dmitrymomot/whitebox/pkg/signup"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func (a *app) passwordCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "password <password>",
		Short: "Check password strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.print(cmd, signup.ValidatePassword(args[0])); err != nil {
				return err
			}
			if explain {
				return a.explain(cmd, signup.CheckPassword(args[0]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "list every unmet requirement")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Check login field lengths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.print(cmd, a.cfg.Login.Validate(args[0], args[1])); err != nil {
				return err
			}
			if explain {
				return a.explain(cmd, a.cfg.Login.Check(args[0], args[1]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "list every field out of bounds")
	return cmd
}

func (a *app) ageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "age <years>",
		Short: "Check age eligibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := parseInt("age", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, signup.VerifyAge(age))
		},
	}
}

func (a *app) emailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Check an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.DebugContext(cmd.Context(), "checking email", slog.String("email", sanitizer.MaskEmail(args[0])))
			return a.print(cmd, a.cfg.Email.Validate(args[0]))
		},
	}
}

// explain prints one "field: message" line per validation failure, grouped
// by field in the order the fields first failed.
func (a *app) explain(cmd *cobra.Command, err error) error {
	errs := validator.ExtractValidationErrors(err)
	for _, field := range errs.Fields() {
		for _, msg := range errs.Get(field) {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", field, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
