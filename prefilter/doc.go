// Package prefilter implements the top-K prefilter that discards intervals
// whose tent can never appear in any of the first K persistence landscapes.
//
// Algorithm:
//
//	Treat each interval as a Birth event at x=birth and a Death event at
//	x=death. Process events in ascending x. Maintain an alive_queue (FIFO,
//	birth order) of currently-alive tent ids, a count in_top of tents
//	currently surfaced to the output, and pending_promotions, the number
//	of dead-but-surfaced tents waiting for a replacement to be surfaced.
//
//	On Birth(i): if in_top < K, surface i (emit its interval, mark
//	in_top_k, increment in_top). Always append i to alive_queue.
//
//	On Death(i): mark i dead. If i was surfaced, increment
//	pending_promotions. While pending_promotions > 0: skip dead entries at
//	the front of alive_queue; if the queue empties, stop; otherwise peek
//	the new front j — if not already surfaced, surface it and decrement
//	pending_promotions, else decrement without emitting (it was already
//	surfaced earlier and this promotion is subsumed).
//
// Complexity: O(n log n) — building and draining the event heap dominates;
// alive_queue bookkeeping amortizes to O(n) since each id is skipped out of
// the FIFO at most once.
//
// Failure: Filter has no fallible preconditions. A non-positive K or an
// empty interval set both simply produce an empty, non-nil-free result
// (nil); there is no invariant a caller can violate that the algorithm
// itself cannot absorb by construction of alive_queue/pending_promotions.
package prefilter
