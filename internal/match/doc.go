// Package match finds the known names closest to a misspelled one.
//
// Names are first normalized (case folded, separators dropped, camel case
// split) so that "firstName", "first_name" and "First-Name" compare equal,
// then ranked by normalized Levenshtein similarity.
package match
