// Package scan partitions an integer range into chunks and runs vampire
// number detection over them concurrently.
//
// The Coordinator fans a range out to a bounded set of worker goroutines,
// one unit of work per chunk, and merges chunk results by chunk index.
// Output order is therefore deterministic: ascending chunk, ascending
// number within the chunk, no matter how scheduling interleaves the
// workers.
package scan
