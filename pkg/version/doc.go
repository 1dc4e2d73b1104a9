// Package version orders version strings under a configurable grammar.
//
// # Overview
//
// Registry documents list their releases as an unordered set of strings.
// This package parses those strings and defines the total order used to pick
// the latest one. A grammar ([Scheme]) has two parts:
//
//   - a separator between numeric segments ("1.2.3", or "1-2-3" with "-")
//   - an ordered vocabulary of pre-release tags; earlier tags rank lower
//
// With tags ["alpha", "beta", "rc"]:
//
//	1.1alpha3 < 1.1beta2 < 1.1rc1 < 1.1
//
// # Leniency
//
// A version whose tag is present but whose tag number is missing or not an
// integer ("1.0.0-rc") parses as "0" without a pre-release instead of
// failing. Strings that do not match the grammar at all fail with
// MALFORMED_VERSION.
//
// # Known limitations
//
// Trailing zero segments are significant: "1.2" sorts before "1.2.0".
//
// # Usage
//
//	latest, err := version.SelectMaximum([]string{"1.0.0", "1.0.0-rc1", "0.9.2"})
//	// latest == "1.0.0"
package version
