package common

import "strings"

// UnknownStr is the String() value of unrecognized enum values.
const UnknownStr = "unknown"

// PkgOf returns the package part of a dotted qualified name.
// Returns empty string for unqualified names.
func PkgOf(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[:i]
	}

	return ""
}

// IsBareMember returns true if qualified names a top-level element of pkg,
// e.g. "com.example.Point" in package "com.example". Nested names such as
// "com.example.Outer.Inner" are not bare members.
func IsBareMember(pkg, qualified string) bool {
	if pkg == "" {
		return !strings.Contains(qualified, ".")
	}

	rest, ok := strings.CutPrefix(qualified, pkg+".")

	return ok && rest != "" && !strings.Contains(rest, ".")
}
