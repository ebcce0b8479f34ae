// Package viz renders a live simulation in the terminal.
//
// The package implements a Bubble Tea program:
//
//   - [Model]: steps a host at the configured rate and draws it
//   - [Canvas]: Braille-based dot canvas
//   - [Picker]: preset menu shown before the live view
//   - Theme selection with 3 built-in colour schemes
//
// # Key Bindings
//
//	Space  - Pause/Resume
//	S      - Spawn a particle
//	A      - Toggle auto-spawn
//	R      - Reset
//	Arrows - Move the boundary
//	T      - Cycle themes
//
// Dragging with the left mouse button moves the boundary to the pointer.
package viz
