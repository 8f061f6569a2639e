package logger

import (
	"context"
	"log/slog"
)

type operationKey struct{}

// WithOperation stores the name of the running operation in ctx so that
// OperationExtractor can stamp it onto every record logged with that context.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

func OperationFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(operationKey{}).(string)
	return name
}

// OperationExtractor adds the "op" attribute when the context carries an operation.
func OperationExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if name := OperationFromContext(ctx); name != "" {
			return Operation(name), true
		}
		return slog.Attr{}, false
	}
}
