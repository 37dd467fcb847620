package life

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps tiny grids on the calling goroutine.
const minRowsPerWorker = 8

// DefaultWorkers is the worker count used when a config leaves Workers at zero.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// CountNeighbors returns the number of live cells in the Moore neighborhood
// of (row, col). Neighbors outside the grid count as dead.
func CountNeighbors(g *Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.height {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.width {
				continue
			}
			count += int(g.cells[r*g.width+c])
		}
	}
	return count
}

// nextCell is B3/S23.
func nextCell(alive uint8, neighbors int) uint8 {
	switch {
	case alive == 1 && (neighbors == 2 || neighbors == 3):
		return 1
	case alive == 0 && neighbors == 3:
		return 1
	default:
		return 0
	}
}

// Next computes the following generation of g into a freshly allocated grid.
// Rows are split across at most workers goroutines; each writes only its own
// rows of the new buffer and reads g, which is never written.
func Next(g *Grid, workers int) *Grid {
	next := NewGrid(g.width, g.height)
	ParallelFor(g.height, minRowsPerWorker, workers, func(start, end int) {
		for row := start; row < end; row++ {
			for col := 0; col < g.width; col++ {
				idx := row*g.width + col
				next.cells[idx] = nextCell(g.cells[idx], CountNeighbors(g, row, col))
			}
		}
	})
	return next
}

// ParallelFor splits [0, n) into contiguous chunks of at least minChunk and
// runs fn on each chunk in its own goroutine, returning when all are done.
func ParallelFor(n, minChunk, workers int, fn func(start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
