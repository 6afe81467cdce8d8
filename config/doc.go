// Package config holds the client-wide settings read by request
// materialization, plus the loaders that populate them.
//
// Settings carries the base host, default API version and auth token. The
// empty string means "not set". Readers only see settings through a Source;
// Store is the mutable Source a host application updates at runtime:
//
//	store := config.NewStore()
//	store.SetBaseHost("api.example.com")
//	store.SetDefaultVersion("v1")
//
// Applications that read settings from files embed ServiceConfig in their
// own config struct and call LoadConfig, which layers config.yml, a .env
// file and process environment variables through Viper. SettingsFromEnv
// reads a bare Settings value from prefixed environment variables.
package config
