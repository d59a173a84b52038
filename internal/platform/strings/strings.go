// Package strings carries small string and slice helpers shared by the
// module wiring code.
package strings

import std "strings"

// IfEmpty substitutes def when in has no elements.
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics when s is blank. The name shows up in the panic so a
// missing option can be traced back to its setter.
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix canonicalizes a mount prefix such as /supply: exactly one
// leading slash, no trailing slash, and never the bare root.
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
