package landscape

// eventKind tags the four kinds of event the sweep processes. The numeric
// order is the tie-break priority at equal x: Cross fires first so a
// crossing discovered exactly at another tent's birth or death is resolved
// before that birth/death is handled; Down precedes Up so a tent dying
// exactly where another is born frees its Status slot first; Turn is last
// since an apex never needs to race anything else at its own x.
type eventKind uint8

const (
	crossKind eventKind = iota
	downKind
	upKind
	turnKind
)

// event is one entry in either of the sweep's two priority queues: the
// static events queue (Up/Turn/Down, built once from the input intervals)
// or the dynamic crosses queue (Cross, discovered during the sweep).
type event struct {
	x, y    float64
	kind    eventKind
	id      int // primary mountain
	otherID int // second mountain, Cross only
}

func eventLess(a, b event) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.kind < b.kind
}

// eventQueue is a container/heap min-heap ordered by eventLess, used for
// both the static Up/Turn/Down queue and the dynamic Cross queue — the
// same two-field (x, priority) min-heap idiom as a Dijkstra-style event
// queue, generalized from a single priority value to a composite key.
type eventQueue []event

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return eventLess(q[i], q[j]) }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(event)) }
func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
