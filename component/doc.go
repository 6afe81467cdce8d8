// Package component defines the lifecycle contract for long-lived reqkit
// pieces such as live channels.
//
// A Component is started before use, stopped on shutdown and can report its
// health. Registry starts components in registration order and stops them in
// reverse.
package component
