package prefilter

import (
	"container/heap"

	"github.com/arclake/plandscape/plcore"
)

// eventKind distinguishes a Birth (interval start) from a Death (interval
// end) in the prefilter's event stream.
type eventKind uint8

const (
	deathKind eventKind = iota // processed before a Birth at the same x
	birthKind
)

// filterEvent is one entry in the prefilter's event heap.
type filterEvent struct {
	x    float64
	kind eventKind
	id   int
}

// eventHeap is a min-heap of filterEvent ordered by (x, kind); Death is
// ordered ahead of Birth at equal x for determinism, mirroring the
// Cross/Down-before-Up tie-break convention used by the landscape sweep.
type eventHeap []filterEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].x != h[j].x {
		return h[i].x < h[j].x
	}
	return h[i].kind < h[j].kind
}
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(filterEvent)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// node tracks the surfacing state of one candidate tent during the sweep.
type node struct {
	interval plcore.Interval
	inTopK   bool
	isDead   bool
}

// Filter discards intervals whose tent can never appear in any of the first
// K landscapes. K must be a positive integer.
//
// Implements the alive_queue/in_top/pending_promotions state machine
// described in the package doc, using a container/heap of immutable
// Birth/Death events (see eventHeap) rather than a mutable priority queue
// of nodes.
func Filter(intervals []plcore.Interval, k int) []plcore.Interval {
	if k <= 0 || len(intervals) == 0 {
		return nil
	}

	nodes := make([]node, len(intervals))
	events := make(eventHeap, 0, 2*len(intervals))
	for i, iv := range intervals {
		nodes[i] = node{interval: iv}
		events = append(events,
			filterEvent{x: iv.Birth, kind: birthKind, id: i},
			filterEvent{x: iv.Death, kind: deathKind, id: i},
		)
	}
	heap.Init(&events)

	aliveQueue := make([]int, 0, len(intervals))
	front := 0 // index of the logical front of aliveQueue (avoids O(n) pop-front)

	output := make([]plcore.Interval, 0, k)
	inTop := 0
	pendingPromotions := 0

	for events.Len() > 0 {
		ev := heap.Pop(&events).(filterEvent)
		switch ev.kind {
		case birthKind:
			if inTop < k {
				nodes[ev.id].inTopK = true
				output = append(output, nodes[ev.id].interval)
				inTop++
			}
			aliveQueue = append(aliveQueue, ev.id)

		case deathKind:
			nodes[ev.id].isDead = true
			if nodes[ev.id].inTopK {
				pendingPromotions++
			}
			for pendingPromotions > 0 {
				for front < len(aliveQueue) && nodes[aliveQueue[front]].isDead {
					front++
				}
				if front >= len(aliveQueue) {
					break
				}
				candidate := aliveQueue[front]
				if !nodes[candidate].inTopK {
					nodes[candidate].inTopK = true
					output = append(output, nodes[candidate].interval)
				}
				pendingPromotions--
			}
		}
	}

	return output
}
