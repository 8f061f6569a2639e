package commands

import (
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/config"
	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/pricing"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

type app struct {
	environ   map[string]string
	cfg       Config
	envFile   string
	rulesFile string
	log       *slog.Logger
	calc      *pricing.Calculator
}

type Option func(*app)

// WithEnviron reads configuration from vars instead of the process
// environment and .env file.
func WithEnviron(vars map[string]string) Option {
	return func(a *app) {
		if vars == nil {
			vars = map[string]string{}
		}
		a.environ = vars
	}
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:               "whitebox",
		Short:             "Business-rule checks, price calculators and toy state machines",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file read before the environment; set variables win")
	root.PersistentFlags().StringVar(&a.rulesFile, "rules", "", "pricing rules YAML file (overrides PRICING_RULES_FILE)")

	root.AddCommand(
		a.evenCmd(), a.divideCmd(), a.gradeCmd(), a.triangleCmd(), a.signCmd(),
		a.passwordCmd(), a.loginCmd(), a.ageCmd(), a.emailCmd(),
		a.discountCmd(), a.orderCmd(), a.shippingCmd(), a.categoryCmd(),
		a.tempCmd(),
		a.lightCmd(), a.vendingCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	if a.rulesFile == "" {
		a.rulesFile = a.cfg.RulesFile
	}

	logOpts, err := a.loggerOptions(cmd)
	if err != nil {
		return err
	}
	a.log = logger.New(logOpts...)
	cmd.SetContext(logger.WithOperation(cmd.Context(), cmd.Name()))

	if err := a.checkPolicies(); err != nil {
		a.log.ErrorContext(cmd.Context(), "signup policy rejected", logger.Error(err))
		return err
	}

	calc, err := a.loadCalculator()
	if err != nil {
		if validator.IsValidationError(err) {
			a.log.ErrorContext(cmd.Context(), "pricing rules rejected",
				slog.Any("fields", validator.ExtractValidationErrors(err).Fields()))
		} else {
			a.log.ErrorContext(cmd.Context(), "pricing rules unavailable", logger.Error(err))
		}
		return err
	}
	a.calc = calc
	return nil
}

// loadConfig layers the process environment (or the injected one) over the
// --env-file values over defaultConfig.
func (a *app) loadConfig() error {
	if a.environ == nil {
		if a.envFile != "" {
			if err := config.LoadEnv(a.envFile); err != nil {
				return err
			}
		}
		return config.Load(&a.cfg)
	}

	vars := a.environ
	if a.envFile != "" {
		fileVars, err := godotenv.Read(a.envFile)
		if err != nil {
			return fmt.Errorf("%w: %w", config.ErrLoadingEnvFile, err)
		}
		maps.Copy(fileVars, a.environ)
		vars = fileVars
	}
	return config.Parse(&a.cfg, vars)
}

// loggerOptions applies LOG_LEVEL and LOG_FORMAT on top of the APP_ENV preset.
func (a *app) loggerOptions(cmd *cobra.Command) ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.AppName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.RunID(uuid.NewString())),
		logger.WithContextExtractors(logger.OperationExtractor()),
	}

	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch format := logger.Format(a.cfg.LogFormat); format {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(format))
	default:
		return nil, fmt.Errorf("LOG_FORMAT: invalid log format %q: must be %q or %q",
			format, logger.FormatJSON, logger.FormatText)
	}
	return opts, nil
}

func (a *app) checkPolicies() error {
	if err := a.cfg.Login.ValidateBounds(); err != nil {
		return fmt.Errorf("login policy: %w", err)
	}
	if err := a.cfg.Email.ValidateBounds(); err != nil {
		return fmt.Errorf("email policy: %w", err)
	}
	return nil
}

func (a *app) loadCalculator() (*pricing.Calculator, error) {
	if a.rulesFile == "" {
		return pricing.NewCalculator(pricing.DefaultRules())
	}

	f, err := os.Open(a.rulesFile)
	if err != nil {
		return nil, fmt.Errorf("open pricing rules: %w", err)
	}
	defer f.Close()

	rules, err := pricing.LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("load pricing rules %s: %w", a.rulesFile, err)
	}
	return pricing.NewCalculator(rules)
}

// print writes result to stdout and records it at debug level.
func (a *app) print(cmd *cobra.Command, result any) error {
	a.log.DebugContext(cmd.Context(), "operation finished", logger.Result(result))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
