// Package scan enumerates candidate photos in a source directory.
//
// It filters entries down to regular files with a jpg/jpeg extension
// (case-insensitive), stats each one for its size, and rejects filenames
// that are not valid UTF-8 so later path construction cannot produce
// garbage folder contents. Everything else in the directory is skipped
// silently.
//
// The returned list keeps directory order; shuffling happens downstream.
package scan
