// Package diagnostic provides structured errors, warnings and notes produced
// while validating mapping definitions.
//
// Key capabilities:
//   - Unknown mapper, filter and hook references with suggestions
//   - Malformed path reports tied to the mapper and rule that declared them
//   - Warnings for rules that can never write (destination already claimed)
package diagnostic
