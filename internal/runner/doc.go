// Package runner orchestrates a full redistribution run: lock the
// destination, validate both directories, enumerate candidates, shuffle
// with the run seed, plan the groups, and hand the plan to the copier.
//
// Each run carries a generated session ID so the structured log lines of
// one run can be told apart from the next. Every stage failure aborts the
// run; there is no partial-success mode.
package runner
