// Package logger builds *slog.Logger values from functional options and adds
// a handler decorator that copies values out of context.Context into every
// record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on each Handle call:
//
//	log := logger.New(
//	    logger.WithDevelopment("signup"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	log.InfoContext(ctx, "registration accepted", logger.Country("Thailand"))
//
// Attribute helpers in attr.go keep key names consistent. Helpers taking an
// error or an optional value return an empty slog.Attr when there is nothing
// to log, so no nil check is needed at the call site.
//
// Nop returns a discarding logger used as the default by components that take
// an optional *slog.Logger.
package logger
