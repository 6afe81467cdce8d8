package config

import "sync"

// Settings are the client-wide defaults applied when a request is
// materialized. An empty field is "not set".
type Settings struct {
	BaseHost       string `yaml:"base_host" mapstructure:"base_host" envconfig:"BASE_HOST"`
	DefaultVersion string `yaml:"default_version" mapstructure:"default_version" envconfig:"DEFAULT_VERSION"`
	AuthToken      string `yaml:"auth_token" mapstructure:"auth_token" envconfig:"AUTH_TOKEN"`
}

// HasBaseHost reports whether a base host is set.
func (s Settings) HasBaseHost() bool { return s.BaseHost != "" }

// HasDefaultVersion reports whether a default version is set.
func (s Settings) HasDefaultVersion() bool { return s.DefaultVersion != "" }

// HasAuthToken reports whether an auth token is set.
func (s Settings) HasAuthToken() bool { return s.AuthToken != "" }

// Source provides a consistent view of Settings at the moment of the call.
type Source interface {
	Snapshot() Settings
}

// Static is a fixed Source.
type Static Settings

// Snapshot returns the static settings.
func (s Static) Snapshot() Settings { return Settings(s) }

// Default returns a Source with no values set.
func Default() Source { return Static{} }

// Store is a Source whose values may be changed at any time. It is safe for
// concurrent use; a Snapshot reflects all writes that completed before it.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates a Store seeded with initial, or empty when none is given.
func NewStore(initial ...Settings) *Store {
	s := &Store{}
	if len(initial) > 0 {
		s.settings = initial[0]
	}
	return s
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetBaseHost sets or clears ("") the base host.
func (s *Store) SetBaseHost(host string) {
	s.Update(func(st *Settings) { st.BaseHost = host })
}

// SetDefaultVersion sets or clears ("") the default version.
func (s *Store) SetDefaultVersion(version string) {
	s.Update(func(st *Settings) { st.DefaultVersion = version })
}

// SetAuthToken sets or clears ("") the auth token.
func (s *Store) SetAuthToken(token string) {
	s.Update(func(st *Settings) { st.AuthToken = token })
}

// Update applies fn to the settings under the write lock.
func (s *Store) Update(fn func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
}

// Replace swaps all settings at once.
func (s *Store) Replace(settings Settings) {
	s.Update(func(st *Settings) { *st = settings })
}

var (
	_ Source = Static{}
	_ Source = (*Store)(nil)
)
