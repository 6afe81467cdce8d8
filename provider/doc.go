// Package provider holds the request/response abstraction that channels are
// decorated through.
//
// A RequestResponse[I, O] takes one input and returns one output. Logging,
// tracing and metrics middlewares wrap it; an Annotator turns each call into
// log fields or span attributes:
//
//	send := provider.Wrap(provider.Func("api", ch.Send),
//	    provider.WithLogging(log, describe),
//	    provider.WithTracing("reqkit", describe),
//	    provider.WithMetrics[In, Out](metrics, "send"),
//	)
//
// The first middleware is outermost.
package provider
