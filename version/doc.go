// Package version reports reqkit build information.
//
// Values are injected at build time:
//
//	go build -ldflags "-X github.com/kbukum/reqkit/version.Version=1.0.0" ./cmd/reqkit
//
// Missing values fall back to the module's embedded VCS build settings.
package version
