package shuffle

import "frameshuffle/internal/scan"

// Files permutes files in place using a Fisher-Yates pass driven by a
// generator seeded with seed. Two calls with the same seed over the same
// input produce the same order. Empty and single-element inputs are left
// untouched.
func Files(files []scan.File, seed uint64) {
	rng := New(seed)
	for i := len(files) - 1; i >= 1; i-- {
		j := int(rng.Next() % uint64(i+1))
		files[i], files[j] = files[j], files[i]
	}
}
