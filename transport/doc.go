// Package transport executes request specs through a channel and decodes
// typed results.
//
// Every execution resolves to exactly one Outcome: a decoded value, or an
// *Error classified as one of four kinds.
//
//	tr := transport.New(ch, transport.WithSettings(store))
//	out := transport.Execute[User](ctx, tr, request.New("users/42"))
//	user, err := out.Get()
//
// Status codes are not failures. A 404 whose body decodes into the target
// type is a success; inspect Outcome.Metadata when the status matters.
// Decoding into *Empty skips the body entirely.
package transport
