// Package plan partitions a shuffled candidate list into destination
// groups, one group per numbered output folder.
//
// The planner is a single greedy forward pass: files stay in their shuffled
// order, a group is sealed the moment the next file would push it over the
// count or byte ceiling, and a file larger than the byte ceiling on its own
// fails the whole plan. This is deliberately not an optimal bin packer; the
// greedy semantics are part of the tool's contract so that a seed always
// maps to the same folder layout.
package plan
