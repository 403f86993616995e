// Package copier executes a planned rotation set: one numbered folder per
// group, byte-for-byte copies of each member under its original name.
//
// Copies are verified with a size and SHA-256 comparison so a corrupted
// copy never lands silently in a rotation folder. The first failure aborts
// the whole run; files already copied stay on disk.
package copier
