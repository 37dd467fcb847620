// Package life implements the grid evolution engine for Conway's Game of Life.
//
// The package is built around three types:
//
//   - [Grid]: fixed-dimension row-major binary matrix
//   - [History]: LIFO of grid snapshots used for undo
//   - [Engine]: owns the current grid, applies the B3/S23 rule and keeps history
//
// Neighbors are counted over the Moore neighborhood and clipped at the grid
// edges; cells outside the grid are dead. There is no wraparound.
//
// # Example
//
//	g := life.Glider(20, 20)
//	eng := life.NewEngine(g, life.DefaultConfig())
//	eng.Step()
//	eng.StepBack()
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Step fans the update out over worker
// goroutines internally but returns only when the new generation is complete.
// Callers must serialize Step, ToggleCell, Reset and friends themselves.
package life
