package logger

import (
	"slices"
	"sync"
)

// Named loggers, keyed by component name ("channel", "transport", ...).
var named sync.Map

// Register binds name to l, replacing any earlier binding.
func Register(name string, l *Logger) {
	named.Store(name, l)
}

// Unregister removes the logger bound to name.
func Unregister(name string) {
	named.Delete(name)
}

// Get returns the logger bound to name. Unbound names get the current
// global logger tagged with name, so Get never returns nil.
func Get(name string) *Logger {
	if v, ok := named.Load(name); ok {
		return v.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults binds each name to a component-tagged child of the
// global logger. Call it after Init so the children pick up its config.
func RegisterDefaults(names ...string) {
	base := GetGlobalLogger()
	for _, name := range names {
		Register(name, base.WithComponent(name))
	}
}

// Registered lists the bound names in sorted order.
func Registered() []string {
	var names []string
	named.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}
