// Package cpuaffinity pins the calling thread to a fixed CPU to reduce
// scheduling-induced timing variance in benchmarks. Pinning is best-effort:
// failure is reported, never fatal.
package cpuaffinity
