package plan

import (
	"fmt"

	"frameshuffle/internal/scan"
)

// Group holds the files assigned to one destination folder, in order, with
// their accumulated byte total.
type Group struct {
	Files []scan.File
	Bytes int64
}

// Count returns the number of files in the group.
func (g Group) Count() int { return len(g.Files) }

// Result is the ordered set of planned groups. Index i maps to destination
// folder i+1. Concatenating the groups' files reproduces the planner input
// exactly.
type Result []Group

// TotalFiles returns the number of files across all groups.
func (r Result) TotalFiles() int {
	total := 0
	for _, g := range r {
		total += g.Count()
	}
	return total
}

// TotalBytes returns the byte total across all groups.
func (r Result) TotalBytes() int64 {
	var total int64
	for _, g := range r {
		total += g.Bytes
	}
	return total
}

// OversizedFileError reports a single file that exceeds the byte ceiling
// and therefore cannot be placed in any group.
type OversizedFileError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *OversizedFileError) Error() string {
	return fmt.Sprintf("file is larger than max-bytes (%d > %d): %s", e.Size, e.Limit, e.Path)
}

// Plan splits files into groups of at most maxFiles entries and maxBytes
// total size. Files are taken in input order and never reordered; a file
// that does not fit the current group starts a new one. Both limits must be
// positive (enforced by config validation before a run reaches here).
//
// The capacity check runs before a file is appended, so a group is never
// over its ceilings; a file exactly filling the remaining capacity is
// accepted. A single file larger than maxBytes fails the plan with an
// *OversizedFileError and no partial result.
func Plan(files []scan.File, maxFiles int, maxBytes int64) (Result, error) {
	var groups Result
	var cur Group

	for _, f := range files {
		if f.Size > maxBytes {
			return nil, &OversizedFileError{Path: f.Path, Size: f.Size, Limit: maxBytes}
		}

		if cur.Count() > 0 && (cur.Count()+1 > maxFiles || cur.Bytes+f.Size > maxBytes) {
			groups = append(groups, cur)
			cur = Group{}
		}

		cur.Files = append(cur.Files, f)
		cur.Bytes += f.Size
	}

	if cur.Count() > 0 {
		groups = append(groups, cur)
	}
	return groups, nil
}
