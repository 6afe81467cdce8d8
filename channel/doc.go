// Package channel sends materialized requests and returns raw response
// bytes with status metadata.
//
// Channel has a single method, Send. Implementations:
//
//   - HTTP: net/http with optional HTTP/2 and TLS settings.
//   - Resty: the same contract on a go-resty client.
//   - Scripted: returns a preset result and records what it was sent, for tests.
//   - Func: adapts a plain function.
//
// A channel never interprets status codes; a 404 is a successful send.
// Instrument routes any Channel through provider middleware for logging,
// tracing and metrics.
package channel
