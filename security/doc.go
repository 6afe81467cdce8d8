// Package security builds client TLS settings for reqkit's live channels.
//
//	cfg := security.TLSConfig{
//	    CAFile:     "/path/to/ca.pem",
//	    MinVersion: "1.3",
//	}
//	tlsConfig, err := cfg.Build()
package security
