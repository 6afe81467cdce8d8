// Package request builds canonical HTTP requests from an immutable
// description.
//
// A Spec names an endpoint plus optional scheme, host, version, path
// extension, headers, query and body. Build combines it with a
// config.Settings snapshot into a Materialized request:
//
//	spec := request.New("users",
//	    request.WithMethod(request.MethodPost),
//	    request.WithQuery("page", 1),
//	    request.WithBody("name", "John Doe"),
//	)
//	mr, err := spec.Materialize(store)
//
// The URL is composed as
//
//	{scheme}://[{host}/][{version}/]{endpoint}[/{extension}][?k=v&k=v]
//
// with host and version falling back to the settings when the Spec leaves
// them unset. Nothing is escaped: segments and query pairs are written as
// given, and the result must parse as a URL. When the Spec requires auth and
// the settings carry a token, it is sent as the Authorization header and
// replaces any caller value.
//
// Building performs no I/O. The only failure is *InvalidRequestError.
package request
