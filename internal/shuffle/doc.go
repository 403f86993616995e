// Package shuffle provides the seeded permutation step of a run.
//
// The generator is a plain xorshift64* register: not cryptographically
// secure, but fully reproducible for a given seed, which is what matters
// when a rotation set needs to be regenerated bit-for-bit. A Fisher-Yates
// pass over the candidate list turns the draw stream into a uniform
// permutation.
package shuffle
