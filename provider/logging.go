package provider

import (
	"context"
	"time"

	"github.com/kbukum/reqkit/logger"
)

// WithLogging logs every call at debug level, or at warn level when it
// fails. The operation field carries the provider name. Fields returned by
// describe are merged in; describe may be nil.
func WithLogging[I, O any](log *logger.Logger, describe Annotator[I, O]) Middleware[I, O] {
	if log == nil {
		log = logger.Nop()
	}
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &loggingProvider[I, O]{decorated: decorated[I, O]{inner}, log: log, describe: describe}
	}
}

type loggingProvider[I, O any] struct {
	decorated[I, O]
	log      *logger.Logger
	describe Annotator[I, O]
}

func (p *loggingProvider[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := p.inner.Execute(ctx, input)

	fields := logger.DurationFields(p.inner.Name(), time.Since(start))
	for k, v := range annotate(p.describe, input, output) {
		fields[k] = v
	}
	if err != nil {
		fields[logger.FieldError] = err.Error()
		p.log.Warn("call failed", fields)
		return output, err
	}
	p.log.Debug("call completed", fields)
	return output, nil
}
