// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks before delegating. The request ID
// and client IP middlewares each expose an extractor for this purpose.
//
// # Usage
//
//	import "github.com/dmitrymomot/ipecho/pkg/logger"
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "ipecho"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "request handled", logger.Duration(elapsed))
//
// ParseLevel and ParseFormat turn configuration strings into options and
// report ErrInvalidLevel or ErrInvalidFormat for bad input.
package logger
