// Package balancer partitions a pool of rated players into evenly matched squads.
//
// Split is the deterministic core: a greedy highest-rating-first assignment to
// whichever squad currently has the lower rating sum, with the median-ranked
// player held out as a substitute when the pool is odd. BestOf and
// RandomizedBestOf repeat Split over shuffled (and, for the latter, rating
// perturbed) copies of the pool and keep the lowest-difference result.
// SplitMatches divides a larger pool into several simultaneous matches.
//
// Every function is stateless. Randomness comes from a Source passed per call,
// so callers running concurrently must not share a non-thread-safe Source.
package balancer
