package life

// History is a LIFO of grid snapshots.
//
// With limit 0 it grows without bound: every forward step keeps one full
// grid. With limit > 0 it is a ring buffer and pushing onto a full history
// evicts the oldest snapshot.
type History struct {
	snaps []*Grid
	start int
	n     int
	limit int
}

func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push stores g as the most recent snapshot. The grid is not copied.
func (h *History) Push(g *Grid) {
	if h.limit == 0 {
		h.snaps = append(h.snaps, g)
		h.n++
		return
	}

	if h.snaps == nil {
		h.snaps = make([]*Grid, h.limit)
	}
	if h.n < h.limit {
		h.snaps[(h.start+h.n)%h.limit] = g
		h.n++
		return
	}
	h.snaps[h.start] = g
	h.start = (h.start + 1) % h.limit
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*Grid, bool) {
	if h.n == 0 {
		return nil, false
	}

	var idx int
	if h.limit == 0 {
		idx = h.n - 1
	} else {
		idx = (h.start + h.n - 1) % h.limit
	}

	g := h.snaps[idx]
	h.snaps[idx] = nil
	if h.limit == 0 {
		h.snaps = h.snaps[:idx]
	}
	h.n--
	return g, true
}

// Peek returns the most recent snapshot without removing it.
func (h *History) Peek() (*Grid, bool) {
	if h.n == 0 {
		return nil, false
	}
	if h.limit == 0 {
		return h.snaps[h.n-1], true
	}
	return h.snaps[(h.start+h.n-1)%h.limit], true
}

func (h *History) Len() int   { return h.n }
func (h *History) Limit() int { return h.limit }

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snaps = nil
	h.start = 0
	h.n = 0
}
