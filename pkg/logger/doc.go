// Package logger builds *slog.Logger values from functional options and adds
// a small set of attribute helpers so that keys stay consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with LogHandlerDecorator, which runs any
// registered ContextExtractor before each record is handled.
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "whitebox"),
//	    logger.WithLevel(level),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(logger.OperationExtractor()),
//	)
//	log.DebugContext(ctx, "state changed",
//	    logger.Component("trafficlight"),
//	    logger.Transition("Red", "Green"),
//	)
//
// Components that accept an optional *slog.Logger fall back to Discard.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
