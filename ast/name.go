package ast

import "strings"

// NormalizeName canonicalizes a variable name for use as a map key. Per
// spec.md §6, variable names are case-insensitive ASCII identifiers with
// two namespaces: local (unprefixed) and global (prefixed ':'). Both the
// Value engine's MachineState and the SMT model's binding table must agree
// on identity for the same surface spelling, so both call this helper
// rather than normalizing independently.
//
// The ':' prefix, if present, is treated as an opaque part of the name: it
// is preserved verbatim, only the remainder is case-folded.
func NormalizeName(name string) string {
	if strings.HasPrefix(name, ":") {
		return ":" + strings.ToLower(name[1:])
	}
	return strings.ToLower(name)
}

// IsGlobal reports whether name (in either raw or normalized form) refers
// to the global namespace.
func IsGlobal(name string) bool {
	return strings.HasPrefix(name, ":")
}
