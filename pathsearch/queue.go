package pathsearch

// entry is an active path together with its enqueue order.
type entry struct {
	path *Path
	seq  uint64
}

// pathQueue is a min-heap of active paths ordered by Score, then by enqueue
// order. Equal scores therefore pop first-in first-out.
type pathQueue []entry

func (q pathQueue) Len() int { return len(q) }

func (q pathQueue) Less(i, j int) bool {
	si, sj := q[i].path.Score(), q[j].path.Score()
	if si != sj {
		return si < sj
	}
	return q[i].seq < q[j].seq
}

func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x interface{}) { *q = append(*q, x.(entry)) }

func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = entry{}
	*q = old[:n-1]

	return it
}
