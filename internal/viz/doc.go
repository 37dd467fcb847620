// Package viz provides the interactive terminal player and editor.
//
// [Model] is a Bubble Tea program over a life engine: it plays or steps
// generations, edits cells under a cursor and records GIFs.
//
// # Key Bindings
//
//	Space   - Play/Pause
//	N / B   - Step forward / back
//	R       - Reset to the initial grid
//	C       - Clear the grid
//	Arrows  - Move the cursor (also h j k l)
//	Enter/X - Toggle the cell under the cursor
//	G       - Start/stop GIF recording
//	T       - Cycle color themes
//	?       - Show help overlay
//
// # Recording
//
// While recording, every change to the grid is captured as a frame. Stopping
// writes the GIF to the configured output directory.
package viz
