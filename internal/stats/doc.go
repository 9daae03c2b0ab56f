// Package stats aggregates workout records into the summaries, buckets and
// goal progress shown by the dashboard commands.
//
// Every function is pure. Inputs are never modified and results depend only
// on the arguments. Dates are compared by their calendar fields alone, so
// callers must convert "now" into the configured zone before passing it as
// asOf (see utils.CivilDate).
package stats
