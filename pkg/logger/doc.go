// Package logger builds *slog.Logger values for the mask service.
//
// New takes functional options for format, level, output and static
// attributes, and wraps the handler in a LogHandlerDecorator that copies
// request-scoped values (such as the request id) from the context into every
// record:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "inputmask"),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "mask applied", logger.Mask("cpf"), logger.Pattern(p.String()))
//
// Production and staging log JSON at info level; anything else is treated as
// development and logs text at debug level.
//
// Attribute helpers return an empty slog.Attr for nil input, which slog drops,
// so logger.Error(err) needs no nil check.
package logger
